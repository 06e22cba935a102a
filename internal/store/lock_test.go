package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerLockWithNilRedisIsANoop(t *testing.T) {
	l := NewCareerLock(nil)
	ctx := context.Background()

	token, err := l.Acquire(ctx, "career-1")
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, l.Release(ctx, "career-1", token))
}

func TestLockKeyIsNamespacedPerCareer(t *testing.T) {
	assert.Equal(t, "managerspelet:lock:career:abc", lockKey("abc"))
	assert.NotEqual(t, lockKey("abc"), lockKey("def"))
}
