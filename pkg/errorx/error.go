package errorx

import "fmt"

type Error struct {
	Code    Code
	Message string
	Details []FieldError
}

// FieldError points to one invalid field of a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) WithDetails(details ...FieldError) Error {
	e.Details = append(e.Details, details...)
	return e
}

func (e Error) Error() string {
	return e.Message
}

// Is matches errors with the same code, so errors.Is(err, Unknown) holds whatever the
// message or details.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}
