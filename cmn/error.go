package cmn

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Error a coded generation failure. The code identifies the failure class, the cause (when any) is the last error
// passed to the ErrFunc that created it.
type Error struct {
	Code    string
	message string
	cause   error
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// ErrFunc returns the formatted Err
type ErrFunc func(params ...interface{}) error

// Err framework error messages pattern
//
// The resulting message has the form "[code] Text. { Detail: value, ... }"
func Err(code string, textAndDetails ...string) ErrFunc {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')
	buf.WriteString(code)
	buf.WriteString("] ")
	buf.WriteString(textAndDetails[0])
	if !strings.HasSuffix(textAndDetails[0], ".") {
		buf.WriteByte('.')
	}

	size := len(textAndDetails)
	if size > 1 {
		buf.WriteString(" {")
		for i := 1; i < size; i++ {
			if i > 1 {
				buf.WriteString(", ")
			} else {
				buf.WriteByte(' ')
			}
			buf.WriteString(textAndDetails[i])
		}
		buf.WriteString(" }")
	}

	format := buf.String()

	return func(params ...interface{}) error {
		e := &Error{Code: code, message: fmt.Sprintf(format, params...)}
		for i := len(params) - 1; i >= 0; i-- {
			if cause, isErr := params[i].(error); isErr {
				e.cause = cause
				break
			}
		}
		return e
	}
}

// IsCode checks if any error in the err chain was created by an Err with the given code
func IsCode(err error, code string) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Code == code {
			return true
		}
		err = e.cause
	}
	return false
}
