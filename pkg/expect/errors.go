package expect

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrUnknownMember is returned when navigating to a name nothing registered.
	ErrUnknownMember = errors.New("unknown member")
	// ErrNotCallable is returned when invoking a link built from a property.
	ErrNotCallable = errors.New("member is not callable")
	// ErrNotNavigable is returned when navigating from a value that is not an assertion.
	ErrNotNavigable = errors.New("value is not navigable")
)

// AssertionError is the failure produced by Assertion.Assert.
type AssertionError struct {
	Message  string
	Expected any
	Actual   any
	ShowDiff bool
	Diff     string
	// StackStart is the ssfi flag of the failing assertion.
	StackStart any
	Stack      []runtime.Frame
}

func (e *AssertionError) Error() string {
	if !e.ShowDiff || e.Diff == "" {
		return e.Message
	}
	return e.Message + "\n\nDiff:\n" + e.Diff
}

// IsAssertionError reports whether err is, or wraps, an *AssertionError.
func IsAssertionError(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}

const libraryPrefix = "github.com/ib-77/expect/pkg/expect"

// captureStack records the caller's frames. Unless full is set, leading frames
// that belong to this library are dropped so the stack starts at user code.
func captureStack(full bool) []runtime.Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var out []runtime.Frame
	trimming := !full
	for {
		frame, more := frames.Next()
		if trimming && isLibraryFrame(frame) {
			if !more {
				break
			}
			continue
		}
		trimming = false
		out = append(out, frame)
		if !more {
			break
		}
	}
	return out
}

func isLibraryFrame(frame runtime.Frame) bool {
	return strings.HasPrefix(frame.Function, libraryPrefix) &&
		!strings.HasSuffix(frame.File, "_test.go")
}

func unknownMember(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownMember, name)
}
