package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("error"), "pass --manifest")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "pass --manifest", hints[0])
}

func TestInvalidInput(t *testing.T) {
	err := NewInvalidInputError("types is empty (%d)", 0)

	assert.True(t, IsInvalidInputError(err))
	assert.False(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "types is empty (0)")
	assert.False(t, IsInvalidInputError(nil))
}

func TestNotFound(t *testing.T) {
	err := Wrap(NewNotFoundError("type %s", "Acme.Missing"), "resolving member")

	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Acme.Missing")
}

func TestAssertionFailure(t *testing.T) {
	err := AssertionFailedf("tuple arity %d != %d", 2, 3)
	wrapped := Wrap(err, "translating member")

	assert.True(t, IsAssertionFailure(wrapped))
	assert.False(t, IsAssertionFailure(New("plain")))
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
}

func ExampleWrap() {
	baseErr := New("no such file")
	err := Wrap(baseErr, "failed to read manifest")
	fmt.Println(err)
	// Output: failed to read manifest: no such file
}
