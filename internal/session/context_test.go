package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err error
}

func (s *failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, s.err
}

func (s *failingStore) Set(context.Context, string, string) error {
	return s.err
}

func (s *failingStore) Delete(context.Context, string) error {
	return s.err
}

func TestContext_InitLoadsPersistedToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, TokenKey, "persisted"))

	sc := NewContext(store, nil)
	assert.False(t, sc.IsAuthenticated(), "anonymous until Init")

	require.NoError(t, sc.Init(ctx))
	assert.True(t, sc.IsAuthenticated())
	assert.Equal(t, "persisted", sc.Token())
}

func TestContext_LoginLogout(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sc := NewContext(store, nil)
	require.NoError(t, sc.Init(ctx))

	require.NoError(t, sc.Login(ctx, "tok"))
	assert.True(t, sc.IsAuthenticated())
	v, ok, _ := store.Get(ctx, TokenKey)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	require.NoError(t, sc.Logout(ctx))
	assert.False(t, sc.IsAuthenticated())
	_, ok, _ = store.Get(ctx, TokenKey)
	assert.False(t, ok)
}

func TestContext_LoginRejectsEmptyToken(t *testing.T) {
	sc := NewContext(NewMemoryStore(), nil)
	assert.Error(t, sc.Login(context.Background(), "  "))
	assert.False(t, sc.IsAuthenticated())
}

func TestContext_Expire(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sc := NewContext(store, nil)
	require.NoError(t, sc.Login(ctx, "tok"))

	require.NoError(t, sc.Expire(ctx))

	assert.False(t, sc.IsAuthenticated())
	_, ok, _ := store.Get(ctx, TokenKey)
	assert.False(t, ok)
}

func TestContext_ExpireClearsMemoryEvenWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	sc := NewContext(NewMemoryStore(), nil)
	require.NoError(t, sc.Login(ctx, "tok"))

	sc.store = &failingStore{err: boom}
	err := sc.Expire(ctx)

	assert.ErrorIs(t, err, boom)
	assert.False(t, sc.IsAuthenticated())
}

func TestContext_InitError(t *testing.T) {
	boom := errors.New("unreachable")
	sc := NewContext(&failingStore{err: boom}, nil)

	err := sc.Init(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "load session")
}

// sharedMemoryStore is a MemoryStore that reports itself as shared, like
// RedisStore, so two Contexts over it behave like two processes.
type sharedMemoryStore struct {
	*MemoryStore
	deleteErr error
}

func (s *sharedMemoryStore) Shared() bool {
	return true
}

func (s *sharedMemoryStore) Delete(ctx context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return s.MemoryStore.Delete(ctx, key)
}

func TestContext_SharedStoreSeesOtherWriters(t *testing.T) {
	ctx := context.Background()
	store := &sharedMemoryStore{MemoryStore: NewMemoryStore()}
	first := NewContext(store, nil)
	second := NewContext(store, nil)
	require.NoError(t, second.Init(ctx))
	assert.False(t, second.IsAuthenticated())

	require.NoError(t, first.Login(ctx, "tok"))
	assert.True(t, second.IsAuthenticated(), "login elsewhere is visible")
	assert.Equal(t, "tok", second.Token())

	require.NoError(t, first.Expire(ctx))
	assert.False(t, second.IsAuthenticated(), "expiry elsewhere is visible")
	assert.False(t, second.Navbar().Authenticated)
}

func TestContext_SharedStoreNeverReturnsRejectedToken(t *testing.T) {
	ctx := context.Background()
	store := &sharedMemoryStore{MemoryStore: NewMemoryStore()}
	sc := NewContext(store, nil)
	require.NoError(t, sc.Login(ctx, "tok"))

	store.deleteErr = errors.New("redis down")
	require.Error(t, sc.Expire(ctx))

	assert.False(t, sc.IsAuthenticated())

	require.NoError(t, sc.Login(ctx, "fresh"))
	assert.Equal(t, "fresh", sc.Token())
}

func TestContext_UnsharedStoreKeepsLoadedCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sc := NewContext(store, nil)
	require.NoError(t, sc.Init(ctx))

	require.NoError(t, store.Set(ctx, TokenKey, "written-directly"))
	assert.False(t, sc.IsAuthenticated())
}
