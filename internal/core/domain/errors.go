package domain

import "errors"

// Error kinds. Handlers map these to HTTP status codes.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidID is returned by repositories when an id is not a valid document id.
	ErrInvalidID = errors.New("invalid id")
)

// Error pairs an error kind with the message shown to API callers.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func InvalidInput(msg string) error { return &Error{Kind: ErrInvalidInput, Msg: msg} }

func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

func Conflict(msg string) error { return &Error{Kind: ErrConflict, Msg: msg} }

func AlreadyExists(msg string) error { return &Error{Kind: ErrAlreadyExists, Msg: msg} }

// RequiredField builds the message used when a mandatory field is missing.
func RequiredField(field string) error {
	return InvalidInput("Invalid input: '" + field + "' is required.")
}
