// Package testing provides helpers for driving parsers in tests: feeding
// chunked input, enumerating chunk partitions and loading test vectors.
package testing

import (
	"fmt"
)

// T is the subset of testing.TB the helpers report through.
type T interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Recorder is a T that collects failures instead of failing a test.
// It is used to check that the helpers themselves report misbehaving parsers.
type Recorder struct {
	Errors []string
	Fatal  string
}

var _ T = &Recorder{} //nolint:exhaustruct

// Helper implements T.
func (r *Recorder) Helper() {}

// Errorf implements T.
func (r *Recorder) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Fatalf implements T. Unlike testing.T it does not stop the caller.
func (r *Recorder) Fatalf(format string, args ...any) {
	r.Fatal = fmt.Sprintf(format, args...)
}

// Failed reports whether anything was recorded.
func (r *Recorder) Failed() bool {
	return len(r.Errors) > 0 || r.Fatal != ""
}
