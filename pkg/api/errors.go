package api

import "github.com/pkg/errors"

// RejectionError is a well-formed server response with success=false.
type RejectionError struct {
	Msg string
}

func (e *RejectionError) Error() string {
	if e.Msg == "" {
		return "request rejected"
	}
	return e.Msg
}

// IsRejection reports whether the error is a server rejection rather than
// a transport failure.
func IsRejection(err error) bool {
	rejection := &RejectionError{}
	return errors.As(err, &rejection)
}
