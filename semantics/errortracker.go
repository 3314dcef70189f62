package semantics

import "fmt"

// ErrorTracker accumulates diagnostics across the whole semantic pass so
// every error in a compilation surfaces at once, instead of aborting at the
// first one (SPEC_FULL.md §4.2 "Failure"). Grounded on the teacher's
// semantics/errortracker.go, narrowed from two error buckets (type vs.
// semantic) to one ordered list — this subset's diagnostics don't need the
// distinction the teacher's richer type system did.
type ErrorTracker struct {
	messages []string
}

func NewErrorTracker() *ErrorTracker {
	return &ErrorTracker{}
}

// Errorf records a diagnostic tied to a source line.
func (et *ErrorTracker) Errorf(line int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	et.messages = append(et.messages, fmt.Sprintf("line %d: %s", line, msg))
}

// HasErrors reports whether any diagnostic was recorded.
func (et *ErrorTracker) HasErrors() bool {
	return len(et.messages) > 0
}

// Messages returns every recorded diagnostic, in the order they occurred.
func (et *ErrorTracker) Messages() []string {
	return et.messages
}
