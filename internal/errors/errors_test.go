package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	first := New("first")
	second := New("second")

	assert.NoError(t, Combine(nil, nil))
	assert.Equal(t, first, Combine(nil, first))

	combined := Combine(first, nil, second)
	assert.Len(t, Errors(combined), 2)
	assert.True(t, Is(combined, first))
	assert.True(t, Is(combined, second))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("boom")
	wrapped := Wrap(cause, "context")

	assert.True(t, Is(wrapped, cause))
	assert.Equal(t, "context: boom", wrapped.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(New("plain")))
}
