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

func TestNewRangeError(t *testing.T) {
	err := NewRangeError("truth %.4f", 1.0001)

	require.Error(t, err)
	assert.True(t, IsRangeError(err))
	assert.False(t, IsNullArgumentError(err))
	assert.Contains(t, err.Error(), "truth 1.0001")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "-1.0 and +1.0")
}

func TestNewNullArgumentError(t *testing.T) {
	err := NewNullArgumentError("trigger")

	assert.True(t, IsNullArgumentError(err))
	assert.False(t, IsRangeError(err))
	assert.Equal(t, "trigger: required argument is nil", err.Error())
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := Wrapf(NewRangeError("operand %v", -2), "and")
	err = Wrap(err, "evaluate")

	assert.True(t, IsRangeError(err))
	assert.True(t, Is(err, ErrRange))
	assert.Contains(t, err.Error(), "evaluate: and: operand -2")
}

func TestNilHandling(t *testing.T) {
	assert.False(t, IsRangeError(nil))
	assert.False(t, IsNullArgumentError(nil))
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, WithHint(nil, "hint"))
}

func TestStackTrace(t *testing.T) {
	err := NewNullArgumentError("time function")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func ExampleNewNullArgumentError() {
	err := NewNullArgumentError("other")
	fmt.Println(err)
	// Output: other: required argument is nil
}
