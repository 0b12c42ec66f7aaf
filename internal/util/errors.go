package util

import "fmt"

// ResponseError is returned by handlers that want a specific status and
// error code on the wire.
type ResponseError struct {
	Msg    string
	Code   string
	Status int
}

func (e ResponseError) Error() string { return e.Msg }

func NewResponseError(status int, code, format string, args ...interface{}) error {
	return ResponseError{
		Msg:    fmt.Sprintf(format, args...),
		Code:   code,
		Status: status,
	}
}
