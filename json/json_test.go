package json_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tellerhq/teller"
	tellerjson "github.com/tellerhq/teller/json"
)

func testSession() teller.Session {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return teller.Session{
		User: teller.User{
			Name:          "Alice",
			AccountNumber: "123",
			Balance:       decimal.RequireFromString("500.00"),
		},
		Token:     "tok-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "session.json")
	store := tellerjson.NewStore(path)

	require.NoError(t, store.Save(testSession()))

	// Token-bearing file must not be world-readable.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.User.Name)
	assert.Equal(t, "123", got.User.AccountNumber)
	assert.True(t, got.User.Balance.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, "tok-1", got.Token)
	assert.True(t, got.CreatedAt.Equal(testSession().CreatedAt))
}

func TestStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store := tellerjson.NewStore(filepath.Join(t.TempDir(), "missing.json"))
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_LoadCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := tellerjson.NewStore(path)
	_, _, err := store.Load()
	assert.Error(t, err)
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := tellerjson.NewStore(path)
	require.NoError(t, store.Save(testSession()))

	require.NoError(t, store.Clear())
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing again is not an error.
	assert.NoError(t, store.Clear())
}

func TestUnmarshal_UnsupportedVersion(t *testing.T) {
	t.Parallel()

	_, err := tellerjson.Unmarshal([]byte(`{"version": 2}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported envelope version")
}

func TestStore_SaveOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := tellerjson.NewStore(path)

	s := testSession()
	require.NoError(t, store.Save(s))
	s.User.Balance = decimal.RequireFromString("450.00")
	require.NoError(t, store.Save(s))

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "450.00", got.User.Balance.StringFixed(2))
}
