package cli

import (
	"errors"
	"fmt"
)

// NewErr creates a new CLI error
func NewErr(message string) Err {
	return Err{message: message}
}

// NewErrw creates a new CLI error with the wrapped cause's details
// hidden from the resulting error message
func NewErrw(message string, err error) Err {
	return Err{message: message, cause: err}
}

// NewPrivilegedErr creates a new CLI error with the wrapped cause's details
// exposed in the resulting error message
func NewPrivilegedErr(message string, err error) PrivilegedErr {
	return PrivilegedErr{NewErrw(message, err)}
}

// Err is a CLI error
type Err struct {
	message string
	cause   error
}

func (err Err) Error() string { return err.message }

// Unwrap unwraps the first non-CLI error as the root cause
func (err Err) Unwrap() error { return findRootCause(err.cause) }

func (err Err) String() string {
	if err.cause == nil {
		return err.message
	}

	var cause string
	switch c := err.cause.(type) {
	case Err:
		cause = c.String()
	case PrivilegedErr:
		cause = c.String()
	default:
		cause = c.Error()
	}
	return fmt.Sprintf("%s: %s", err.message, cause)
}

// PrivilegedErr is a privileged CLI error
type PrivilegedErr struct {
	Err
}

func (err PrivilegedErr) Error() string {
	return fmt.Sprintf("%s: %s", err.message, err.Unwrap().Error())
}

func findRootCause(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		return findRootCause(cause)
	}
	return err
}

// DisableUsage disables the usage printing when an error occurs
type DisableUsage interface {
	DisableUsage() struct{}
}

type errDisableUsage struct {
	error
}

func (err errDisableUsage) DisableUsage() struct{} { return struct{}{} }

func (err errDisableUsage) Unwrap() error { return err.error }

// CommandSuggester handles any suggestions to run if the current command isn't working
type CommandSuggester interface {
	SuggestedCommands() []interface{}
}

// ErrNotLoggedIn is returned by commands that require a session
// when the profile holds none
var ErrNotLoggedIn = errNotLoggedIn{}

type errNotLoggedIn struct{}

func (errNotLoggedIn) Error() string { return "no user is currently logged in" }

func (errNotLoggedIn) SuggestedCommands() []interface{} {
	return []interface{}{Name + " login"}
}
