package service

import "fmt"

// Error is a domain-level failure surfaced by the facade. Message is the
// human-readable text the state stores record and the UI displays; Err
// keeps the underlying cause reachable for errors.Is checks.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func notFound(message string, err error) *Error {
	return &Error{Code: "not_found", Message: message, Err: err}
}
