// Package engine wraps a long-lived LaTeX compilation engine instance.
package engine

import "fmt"

// CompilationError represents a failed engine compilation, carrying the
// engine's diagnostic log output
type CompilationError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// InitError represents a failure to construct the engine instance
type InitError struct {
	Message string
	Cause   error
}

func (e *InitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("engine init error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("engine init error: %s", e.Message)
}

func (e *InitError) Unwrap() error {
	return e.Cause
}
