package response

import (
	"errors"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

// Envelope is the JSON body every endpoint answers with.
type Envelope struct {
	Status  bool        `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Msg     string      `json:"msg,omitempty"`
	Error   string      `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func Success(msg string, data interface{}) Envelope {
	return Envelope{Status: true, Msg: msg, Data: data}
}

func Failure(msg string, err string) Envelope {
	return Envelope{Status: false, Msg: msg, Error: err}
}
