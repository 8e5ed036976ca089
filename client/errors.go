package client

import (
	"errors"
	"fmt"
)

// ProtocolError reports a response status code outside the expected set of
// the operation that issued the request.
type ProtocolError struct {
	Method     string
	StatusCode int
	Reason     string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("method %s returns status code: %d and reason: %s", e.Method, e.StatusCode, e.Reason)
}

// AsProtocolError unwraps err as a *ProtocolError if possible.
func AsProtocolError(err error) (*ProtocolError, bool) {
	var perr *ProtocolError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
