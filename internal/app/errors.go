package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrAlreadyRan indicates Run was called on a finished application.
	ErrAlreadyRan = errors.New("application already ran")

	// ErrBoardInit indicates the board module refused to initialize.
	ErrBoardInit = errors.New("board initialization failed")
)

// InitError reports a startup phase that failed.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// ComponentError represents an error from a specific component.
type ComponentError struct {
	Component string // Component name (e.g., "terminal", "widget", "dispatcher")
	Action    string // Action being performed
	Err       error  // Underlying error
}

// NewComponentError creates a new ComponentError.
func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{
		Component: component,
		Action:    action,
		Err:       err,
	}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}

	if e.Action != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Component, e.Action, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Component, e.Action)
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Component, e.Err)
	}

	return e.Component
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecoveredPanicError wraps a panic value as an error. Source names the
// binding or phase that panicked.
// Error() includes the stack trace; use Summary for user-facing output.
type RecoveredPanicError struct {
	Source string
	Value  any
	Stack  string
	Cause  error
}

// NewRecoveredPanicError creates a new RecoveredPanicError.
func NewRecoveredPanicError(source string, value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{
		Source: source,
		Value:  value,
		Stack:  stack,
	}
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stack != "" {
		return e.Summary() + "\n" + e.Stack
	}
	return e.Summary()
}

// Summary describes the panic without the stack trace.
func (e *RecoveredPanicError) Summary() string {
	return fmt.Sprintf("panic in %s: %v", e.Source, e.Value)
}

func (e *RecoveredPanicError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
