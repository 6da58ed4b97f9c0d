package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	m, err := NewManager("secret", time.Hour)
	require.NoError(t, err)

	hash, err := m.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, m.VerifyPassword(hash, "hunter2"))
	assert.False(t, m.VerifyPassword(hash, "hunter3"))
}

func TestTokens(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	m, err := NewManager("secret", 24*time.Hour, WithClock(clock))
	require.NoError(t, err)

	token, err := m.IssueToken("user-1", "binger@example.com")
	require.NoError(t, err)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "binger@example.com", id.Email)

	t.Run("expired token", func(t *testing.T) {
		now = now.Add(25 * time.Hour)
		defer func() { now = now.Add(-25 * time.Hour) }()

		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewManager("different", 24*time.Hour, WithClock(clock))
		require.NoError(t, err)

		_, err = other.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestEmptySecret(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.Error(t, err)
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()

	_, ok := FromCtx(ctx)
	assert.False(t, ok)

	ctx = WithIdentity(ctx, Identity{UserID: "user-1"})
	id, ok := FromCtx(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", id.UserID)
}

func TestGate(t *testing.T) {
	g := NewGate(DefaultPendingTTL)

	_, ok := g.Resume("client-1")
	assert.False(t, ok)

	g.Capture("client-1", PendingAction{Kind: ActionAddShow, TmdbID: 1399})

	// a later capture overwrites the first
	g.Capture("client-1", PendingAction{Kind: ActionAddShow, TmdbID: 95396})

	action, ok := g.Resume("client-1")
	require.True(t, ok)
	assert.Equal(t, ActionAddShow, action.Kind)
	assert.Equal(t, int32(95396), action.TmdbID)

	// resumed exactly once
	_, ok = g.Resume("client-1")
	assert.False(t, ok)

	g.Capture("client-2", PendingAction{Kind: ActionAddShow, TmdbID: 1399})
	g.Discard("client-2")
	_, ok = g.Resume("client-2")
	assert.False(t, ok)
}
