// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/auth/memory"
)

// fakeHasher keeps store tests fast; the argon2id hasher is tested in
// the auth package.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "digest:" + password, nil
}

func (fakeHasher) Verify(password, digest string) (bool, error) {
	return digest == "digest:"+password, nil
}

func TestAccountStore_CreateAccount(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore(fakeHasher{})

	t.Run("allocates monotonic ids", func(t *testing.T) {
		first, err := store.CreateAccount(ctx, "alice", "digest:a")
		require.NoError(t, err)
		second, err := store.CreateAccount(ctx, "bob", "digest:b")
		require.NoError(t, err)

		assert.Equal(t, uint64(1), first.ID)
		assert.Equal(t, uint64(2), second.ID)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := store.CreateAccount(ctx, "alice", "digest:x")
		assert.ErrorIs(t, err, auth.ErrAlreadyExists)
	})
}

func TestAccountStore_GetAccount(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore(fakeHasher{})

	created, err := store.CreateAccount(ctx, "alice", "digest:a")
	require.NoError(t, err)

	t.Run("returns stored account", func(t *testing.T) {
		account, err := store.GetAccount(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, created.ID, account.ID)
		assert.Equal(t, "alice", account.Username)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := store.GetAccount(ctx, "nobody")
		assert.ErrorIs(t, err, auth.ErrNotFound)
	})

	t.Run("returns a defensive copy", func(t *testing.T) {
		require.NoError(t, store.LinkCompany(ctx, "alice", 12))

		account, err := store.GetAccount(ctx, "alice")
		require.NoError(t, err)
		account.CompanyIDs[0] = 999
		account.Username = "mallory"

		fresh, err := store.GetAccount(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []uint64{12}, fresh.CompanyIDs)
		assert.Equal(t, "alice", fresh.Username)
	})
}

func TestAccountStore_HasAccount(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore(fakeHasher{})

	assert.False(t, store.HasAccount(ctx, "alice"))

	_, err := store.CreateAccount(ctx, "alice", "digest:a")
	require.NoError(t, err)
	assert.True(t, store.HasAccount(ctx, "alice"))
}

func TestAccountStore_Verify(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore(fakeHasher{})

	_, err := store.CreateAccount(ctx, "alice", "digest:hunter2")
	require.NoError(t, err)

	assert.True(t, store.Verify(ctx, "alice", "hunter2"))
	assert.False(t, store.Verify(ctx, "alice", "wrong"))
	// Unknown usernames verify against the dummy digest and report false,
	// exactly like a wrong password.
	assert.False(t, store.Verify(ctx, "nobody", "hunter2"))
}

func TestAccountStore_Links(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore(fakeHasher{})

	_, err := store.CreateAccount(ctx, "alice", "digest:a")
	require.NoError(t, err)

	t.Run("links accumulate", func(t *testing.T) {
		require.NoError(t, store.LinkCompany(ctx, "alice", 12))
		require.NoError(t, store.LinkCompany(ctx, "alice", 31))
		require.NoError(t, store.LinkApplication(ctx, "alice", 7))

		account, err := store.GetAccount(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []uint64{12, 31}, account.CompanyIDs)
		assert.Equal(t, []uint64{7}, account.ApplicationIDs)
	})

	t.Run("unknown account", func(t *testing.T) {
		assert.ErrorIs(t, store.LinkCompany(ctx, "nobody", 1), auth.ErrNotFound)
		assert.ErrorIs(t, store.LinkApplication(ctx, "nobody", 1), auth.ErrNotFound)
	})
}

func TestAccountStore_ConcurrentCreate(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	store := memory.NewAccountStore(fakeHasher{})

	const workers = 32
	var created atomic.Int64

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.CreateAccount(ctx, "alice", "digest:a"); err == nil {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created.Load(), "exactly one concurrent create must succeed")

	account, err := store.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), account.ID)
}
