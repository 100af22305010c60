package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/ports"
)

func newStores(t *testing.T) map[string]ports.SessionStore {
	t.Helper()

	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]ports.SessionStore{
		"sqlite": sqliteStore,
		"memory": NewMemoryStore(),
	}
}

func TestSessionStorePutGet(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "s1", "appState", []byte(`{"screen":"chat"}`)))

			got, err := store.Get(ctx, "s1", "appState")
			require.NoError(t, err)
			assert.JSONEq(t, `{"screen":"chat"}`, string(got))

			require.NoError(t, store.Put(ctx, "s1", "appState", []byte(`{"screen":"history"}`)))
			got, err = store.Get(ctx, "s1", "appState")
			require.NoError(t, err)
			assert.JSONEq(t, `{"screen":"history"}`, string(got), "put replaces the previous value")
		})
	}
}

func TestSessionStoreMissingKey(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "s1", "nothing")
			assert.ErrorIs(t, err, domain.ErrStateNotFound)
		})
	}
}

func TestSessionStoreIsolatesSessions(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "s1", "appState", []byte("one")))
			require.NoError(t, store.Put(ctx, "s2", "appState", []byte("two")))

			got, err := store.Get(ctx, "s1", "appState")
			require.NoError(t, err)
			assert.Equal(t, "one", string(got))

			got, err = store.Get(ctx, "s2", "appState")
			require.NoError(t, err)
			assert.Equal(t, "two", string(got))
		})
	}
}

func TestSessionStoreKeysAndDelete(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			keys, err := store.Keys(ctx, "s1")
			require.NoError(t, err)
			assert.Empty(t, keys)

			require.NoError(t, store.Put(ctx, "s1", "settingState", []byte("{}")))
			require.NoError(t, store.Put(ctx, "s1", "appState", []byte("{}")))
			require.NoError(t, store.Put(ctx, "s2", "contextState", []byte("{}")))

			keys, err = store.Keys(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, []string{"appState", "settingState"}, keys)

			require.NoError(t, store.Delete(ctx, "s1", "appState"))
			require.NoError(t, store.Delete(ctx, "s1", "appState"), "deleting twice is fine")

			keys, err = store.Keys(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, []string{"settingState"}, keys)
		})
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	value := []byte("abc")

	require.NoError(t, store.Put(ctx, "s", "k", value))
	value[0] = 'x'

	got, err := store.Get(ctx, "s", "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "state.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "s1", "contextState", []byte(`{"activeFile":null}`)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "s1", "contextState")
	require.NoError(t, err)
	assert.JSONEq(t, `{"activeFile":null}`, string(got))
}
