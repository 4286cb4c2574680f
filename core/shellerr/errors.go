// Package shellerr holds the errors a command can fail with. Each renders
// the message shown to the user; anything else is reported generically.
package shellerr

import (
	"errors"
	"fmt"
)

// ParseError means the command line could not be tokenized, for example
// because of an unterminated quote.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UsageError means a built-in was invoked with the wrong arguments.
type UsageError struct {
	Use string
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Use
}

// NotFoundError means a file or directory named on the command line does
// not exist.
type NotFoundError struct {
	// Op is the command that failed, empty for plain file lookups.
	Op   string
	Path string
	// Reason replaces the default "No such file or directory".
	Reason string
}

func (e *NotFoundError) Error() string {
	if e.Op == "" {
		return "File not found: " + e.Path
	}

	reason := e.Reason
	if reason == "" {
		reason = "No such file or directory"
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Path, reason)
}

// LaunchError means an external program could not be started.
type LaunchError struct {
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("'%s' is not recognized as an internal or external command", e.Name)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// StateError means the persisted session could not be read.
type StateError struct {
	Path string
	Err  error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("could not read session state from %q: %v", e.Path, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// Message renders err the way the shell reports it.
func Message(err error) string {
	var (
		parseErr    *ParseError
		usageErr    *UsageError
		notFoundErr *NotFoundError
		launchErr   *LaunchError
		stateErr    *StateError
	)

	switch {
	case errors.As(err, &parseErr):
		return parseErr.Error()
	case errors.As(err, &usageErr):
		return usageErr.Error()
	case errors.As(err, &notFoundErr):
		return notFoundErr.Error()
	case errors.As(err, &launchErr):
		return launchErr.Error()
	case errors.As(err, &stateErr):
		return stateErr.Error()
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}
