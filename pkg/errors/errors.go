package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
)

// Error wraps a message (and optionally a cause) together with the call
// stack captured at creation time.
type Error struct {
	message string
	cause   error
	stack   []uintptr
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// New returns an error with the given message and a captured stack.
func New(message string) error {
	return &Error{
		message: message,
		stack:   callers(),
	}
}

// Errorf formats an error like fmt.Errorf, honoring %w wrapping, and
// captures the stack at the call site.
func Errorf(format string, args ...interface{}) error {
	wrapped := fmt.Errorf(format, args...)
	return &Error{
		message: wrapped.Error(),
		cause:   stderrors.Unwrap(wrapped),
		stack:   callers(),
	}
}

// ErrorStack renders err's message followed by the captured stack of the
// innermost *Error in its chain. Errors without a stack render as plain
// messages.
func ErrorStack(err error) string {
	if err == nil {
		return ""
	}

	var target *Error
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if custom, ok := e.(*Error); ok {
			target = custom
		}
	}
	if target == nil {
		return err.Error()
	}

	var sb strings.Builder
	sb.WriteString(err.Error())
	frames := runtime.CallersFrames(target.stack)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "\n    %s\n        %s:%d", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling Unwrap on err, if available.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

func callers() []uintptr {
	pc := make([]uintptr, 32)
	n := runtime.Callers(3, pc)
	return pc[:n]
}
