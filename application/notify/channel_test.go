package notify

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPushReturnsImmediatelyWithUniqueIDs(t *testing.T) {
	c := NewChannel(zap.NewNop())

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		id := c.Push(TypeInfo, fmt.Sprintf("msg %d", i), time.Minute)
		_, dup := seen[id]
		require.False(t, dup, "toast ids must be unique")
		seen[id] = struct{}{}
	}
	assert.Len(t, c.Active(), 50)
}

func TestActivePreservesInsertionOrder(t *testing.T) {
	c := NewChannel(zap.NewNop())
	c.Push(TypeSuccess, "first", time.Minute)
	c.Push(TypeError, "second", time.Minute)
	c.Push(TypeInfo, "third", time.Minute)

	active := c.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "first", active[0].Message)
	assert.Equal(t, "second", active[1].Message)
	assert.Equal(t, "third", active[2].Message)
}

func TestToastExpiresOnItsOwn(t *testing.T) {
	c := NewChannel(zap.NewNop())
	c.Push(TypeSuccess, "ok", 50*time.Millisecond)

	require.Len(t, c.Active(), 1)
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, c.Active(), "the toast removes itself after its timeout")
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := NewChannel(zap.NewNop())
	id := c.Push(TypeInfo, "hello", time.Minute)

	c.Remove(id)
	c.Remove(id)
	c.Remove("not-an-id")

	assert.Empty(t, c.Active())
}

func TestRemoveCancelsExpiry(t *testing.T) {
	c := NewChannel(zap.NewNop())
	id := c.Push(TypeInfo, "hello", 30*time.Millisecond)
	c.Remove(id)
	c.Push(TypeInfo, "kept", time.Minute)

	time.Sleep(40 * time.Millisecond)
	require.Len(t, c.Active(), 1)
	assert.Equal(t, "kept", c.Active()[0].Message)
}

func TestClearEmptiesEverything(t *testing.T) {
	c := NewChannel(zap.NewNop())
	c.Push(TypeInfo, "one", time.Minute)
	c.Push(TypeInfo, "two", time.Minute)

	c.Clear()

	assert.Empty(t, c.Active())
}

func TestZeroTimeoutUsesDefault(t *testing.T) {
	c := NewChannel(zap.NewNop())
	c.Success("ok")

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, DefaultTimeout, active[0].Timeout)
	assert.Equal(t, TypeSuccess, active[0].Type)
}
