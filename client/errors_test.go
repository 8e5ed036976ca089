package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocolErrorMessage(t *testing.T) {
	err := &ProtocolError{Method: "MKCOL", StatusCode: 500, Reason: "Internal Server Error"}
	assert.Equal(t, "method MKCOL returns status code: 500 and reason: Internal Server Error", err.Error())
}

func TestAsProtocolError(t *testing.T) {
	inner := &ProtocolError{Method: "PUT", StatusCode: 403, Reason: "Forbidden"}
	wrapped := fmt.Errorf("upload failed, err:%w", inner)
	perr, ok := AsProtocolError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, inner, perr)

	_, ok = AsProtocolError(fmt.Errorf("plain error"))
	assert.False(t, ok)
}

func TestStatusSetContains(t *testing.T) {
	assert.True(t, mkdirExpectedCodes.contains(405))
	assert.True(t, mkdirExpectedCodes.contains(301))
	assert.False(t, mkdirExpectedCodes.contains(500))
	assert.False(t, deleteExpectedCodes.contains(404))
}
