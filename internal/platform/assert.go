package platform

import "fmt"

// AssertionError is the panic value raised by Assert.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return "assertion failed: " + e.Message
}

// Assert panics when ok is false. It guards invariants whose violation is a
// programming error, never a runtime condition.
func Assert(ok bool, format string, args ...any) {
	if !ok {
		panic(&AssertionError{Message: fmt.Sprintf(format, args...)})
	}
}
