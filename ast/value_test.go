package ast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueEquals(t *testing.T) {
	t.Run("Scalars", func(t *testing.T) {
		assert.True(t, NewValue(42).Equals(NewValue(42), DefaultComparer))
		assert.False(t, NewValue(42).Equals(NewValue(43), DefaultComparer))
		assert.False(t, NewValue(42).Equals(NewValue("42"), DefaultComparer))
	})

	t.Run("UncomparablePayload", func(t *testing.T) {
		// Must not panic on dynamic types == can't handle.
		assert.True(t, NewValue([]byte("x")).Equals(NewValue([]byte("x")), DefaultComparer))
		assert.False(t, NewValue([]byte("x")).Equals(NewValue([]byte("y")), DefaultComparer))
		assert.False(t, NewValue([]byte("x")).Equals(NewValue(42), DefaultComparer))
	})

	t.Run("TimeByInstant", func(t *testing.T) {
		now := time.Now()
		// Round(0) strips the monotonic reading; the instants are equal.
		assert.True(t, NewValue(now).Equals(NewValue(now.Round(0)), DefaultComparer))
		assert.False(t, NewValue(now).Equals(NewValue(now.Add(time.Second)), DefaultComparer))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.True(t, NewValue(nil).Equals(NewValue(nil), DefaultComparer))
		assert.False(t, NewValue(nil).Equals(NewValue(0), DefaultComparer))
	})
}
