package handler

// FailureError attaches the route's generic failure message to an
// unexpected error. The message is safe to show callers; Err is only logged.
type FailureError struct {
	Message string
	Err     error
}

func (e *FailureError) Error() string { return e.Message + ": " + e.Err.Error() }

func (e *FailureError) Unwrap() error { return e.Err }

// Failure wraps err for the central error handler. Domain errors inside err
// still resolve to their own status code and message.
func Failure(msg string, err error) error {
	return &FailureError{Message: msg, Err: err}
}
