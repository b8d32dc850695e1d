// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/auth/memory"
)

func newSignedStore(t *testing.T) (*memory.SignedSessionStore, *auth.SignedIssuer) {
	t.Helper()
	issuer, err := auth.NewSignedIssuer("test-secret", time.Minute)
	require.NoError(t, err)
	store, err := memory.NewSignedSessionStore(issuer, time.Minute)
	require.NoError(t, err)
	return store, issuer
}

func TestNewSignedSessionStore_NilVerifier(t *testing.T) {
	store, err := memory.NewSignedSessionStore(nil, time.Minute)
	require.Error(t, err)
	assert.Nil(t, store)
}

func TestSignedSessionStore_Lookup(t *testing.T) {
	ctx := context.Background()
	store, issuer := newSignedStore(t)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	t.Run("verifies statelessly", func(t *testing.T) {
		// No Open needed: the token carries its own identity.
		username, err := store.Lookup(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := store.Lookup(ctx, "not-a-token")
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})
}

func TestSignedSessionStore_OpenClose(t *testing.T) {
	ctx := context.Background()
	store, issuer := newSignedStore(t)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	require.NoError(t, store.Open(ctx, "alice", token))
	assert.True(t, store.IsLoggedIn(ctx, "alice"))
	assert.False(t, store.IsLoggedIn(ctx, "bob"))

	store.Close(ctx, token)
	assert.False(t, store.IsLoggedIn(ctx, "alice"))

	// The signature is still valid after close; only the active-session
	// marker is gone. True revocation needs the opaque strategy.
	username, err := store.Lookup(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestSignedSessionStore_CloseInvalidToken(t *testing.T) {
	ctx := context.Background()
	store, issuer := newSignedStore(t)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)
	require.NoError(t, store.Open(ctx, "alice", token))

	// Garbage tokens cannot name a session to close.
	store.Close(ctx, "not-a-token")
	assert.True(t, store.IsLoggedIn(ctx, "alice"))
}
