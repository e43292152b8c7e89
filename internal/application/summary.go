package application

import "go.uber.org/multierr"

// Summary records the outcome of every profile attempted during a run.
type Summary struct {
	Written []string
	Failed  []string
	Errors  []error
}

func (s *Summary) fail(name string, err error) {
	s.Failed = append(s.Failed, name)
	s.Errors = append(s.Errors, err)
}

// Err combines the per-profile failures, or returns nil when all profiles were written.
func (s Summary) Err() error {
	return multierr.Combine(s.Errors...)
}
