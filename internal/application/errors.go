package application

import (
	"fmt"
	"path/filepath"

	"github.com/satellitewp/rocket-parser/internal/profile"
	"github.com/satellitewp/rocket-parser/internal/render"
)

const disabledSuffix = ".disabled"

var (
	// ErrConfigMissing is returned when the profile configuration file cannot be found.
	ErrConfigMissing = profile.ErrConfigMissing
	// ErrTemplateMissing is returned when the template file cannot be found.
	ErrTemplateMissing = render.ErrTemplateMissing
)

// PreconditionError reports a missing input file. The run stops before any
// profile is written.
type PreconditionError struct {
	Path  string
	Err   error
	Cause error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *PreconditionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Guidance explains how to restore the missing file from the copy shipped
// with a ".disabled" suffix.
func (e *PreconditionError) Guidance() string {
	name := filepath.Base(e.Path)
	return fmt.Sprintf("Error: the file '%s' could not be found to generate the configuration. "+
		"You must rename the original '%s%s' file to '%s' and run this script again.",
		name, name, disabledSuffix, name)
}
