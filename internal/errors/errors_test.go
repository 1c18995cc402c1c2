package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return "coded" }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codedError{code: 7}, "context")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestStackTrace(t *testing.T) {
	assert.Empty(t, StackTrace(New("no stack")))
	assert.Empty(t, StackTrace(nil))

	trace := StackTrace(Wrap(New("boom"), "while testing"))
	assert.Contains(t, trace, "while testing: boom")
	assert.Contains(t, trace, "TestStackTrace")
}
