package dispatcher

import (
	"errors"
	"fmt"
)

// Dispatcher errors.
var (
	// ErrPanic indicates a binding action panicked.
	ErrPanic = errors.New("dispatcher: binding panic")

	// ErrNilAction indicates a binding was created without an action.
	ErrNilAction = errors.New("dispatcher: nil action")
)

// PanicError wraps a recovered panic from a binding action.
// Error() includes the stack trace; keep it out of user-facing output.
type PanicError struct {
	Binding string
	Value   any
	Stack   string
}

func (e *PanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stack != "" {
		return fmt.Sprintf("binding %s panicked: %v\n%s", e.Binding, e.Value, e.Stack)
	}
	return fmt.Sprintf("binding %s panicked: %v", e.Binding, e.Value)
}

// Unwrap lets errors.Is(err, ErrPanic) match.
func (e *PanicError) Unwrap() error {
	return ErrPanic
}
