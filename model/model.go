package model

import "time"

// Failure is a path that could not be processed, with the reason why.
type Failure struct {
	Path   string
	Reason string
}

// Summary holds the results of a run for display.
type Summary struct {
	Root     string
	Cleaned  []string
	Skipped  []Failure
	Errors   []Failure
	Checked  int
	Duration time.Duration
	Message  string
}

// AddCleaned records a file that was rewritten.
func (s *Summary) AddCleaned(path string) {
	s.Cleaned = append(s.Cleaned, path)
}

// AddSkipped records a file that could not be read or written back.
func (s *Summary) AddSkipped(path, reason string) {
	s.Skipped = append(s.Skipped, Failure{Path: path, Reason: reason})
}

// AddError records an entry the walk could not enumerate.
func (s *Summary) AddError(path, reason string) {
	s.Errors = append(s.Errors, Failure{Path: path, Reason: reason})
}

// Empty reports whether the run put nothing in any bucket.
func (s *Summary) Empty() bool {
	return len(s.Cleaned) == 0 && len(s.Skipped) == 0 && len(s.Errors) == 0
}
