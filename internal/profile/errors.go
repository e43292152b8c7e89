package profile

import "errors"

var (
	// ErrConfigMissing is returned when the profile configuration file does not exist.
	ErrConfigMissing = errors.New("configuration file not found")
)
