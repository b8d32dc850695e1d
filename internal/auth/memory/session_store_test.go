// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/auth/memory"
)

func TestSessionStore_OpenLookup(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	require.NoError(t, store.Open(ctx, "alice", "token_1"))

	username, err := store.Lookup(ctx, "token_1")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.True(t, store.IsLoggedIn(ctx, "alice"))
	assert.Equal(t, 1, store.ActiveSessions())
}

func TestSessionStore_LookupUnknown(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	_, err := store.Lookup(ctx, "token_999")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestSessionStore_OpenValidation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	assert.Error(t, store.Open(ctx, "", "token_1"))
	assert.Error(t, store.Open(ctx, "alice", ""))
	assert.Equal(t, 0, store.ActiveSessions())
}

func TestSessionStore_Close(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	require.NoError(t, store.Open(ctx, "alice", "token_1"))

	t.Run("removes both indexes", func(t *testing.T) {
		store.Close(ctx, "token_1")

		assert.False(t, store.IsLoggedIn(ctx, "alice"))
		_, err := store.Lookup(ctx, "token_1")
		assert.ErrorIs(t, err, auth.ErrNotFound)
		assert.Equal(t, 0, store.ActiveSessions())
	})

	t.Run("repeat close is a no-op", func(t *testing.T) {
		store.Close(ctx, "token_1")
		store.Close(ctx, "token_999")
		assert.Equal(t, 0, store.ActiveSessions())
	})
}

func TestSessionStore_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	store := memory.NewSessionStore()

	const workers = 16
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			username := fmt.Sprintf("user_%d", i)
			token := fmt.Sprintf("token_%d", i)
			assert.NoError(t, store.Open(ctx, username, token))
			assert.True(t, store.IsLoggedIn(ctx, username))
			if i%2 == 0 {
				store.Close(ctx, token)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers/2, store.ActiveSessions())
}
