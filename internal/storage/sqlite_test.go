package storage

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()
	logger := zerolog.New(io.Discard)
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStorage(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	t.Run("GetMissing", func(t *testing.T) {
		_, err := s.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SetGet", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyEntries, []byte(`[]`)))

		got, err := s.Get(ctx, KeyEntries)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeySettings, []byte(`{"dailyGoal":2500}`)))
		require.NoError(t, s.Set(ctx, KeySettings, []byte(`{"dailyGoal":3000}`)))

		got, err := s.Get(ctx, KeySettings)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"dailyGoal":3000}`), got)
	})

	t.Run("SetMulti", func(t *testing.T) {
		err := s.SetMulti(ctx, map[string][]byte{
			KeyProfile:  []byte(`{"weight":80}`),
			KeySettings: []byte(`{"dailyGoal":2800}`),
		})
		require.NoError(t, err)

		profile, err := s.Get(ctx, KeyProfile)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"weight":80}`), profile)

		settings, err := s.Get(ctx, KeySettings)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"dailyGoal":2800}`), settings)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "gone", []byte(`x`)))
		require.NoError(t, s.Delete(ctx, "gone"))

		_, err := s.Get(ctx, "gone")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting a missing key is fine.
		assert.NoError(t, s.Delete(ctx, "gone"))
	})

	t.Run("Reopen", func(t *testing.T) {
		logger := zerolog.New(io.Discard)
		path := filepath.Join(t.TempDir(), "persist.db")

		first, err := NewSQLiteStorage(path, &logger)
		require.NoError(t, err)
		require.NoError(t, first.Set(ctx, KeyEntries, []byte(`[1]`)))
		require.NoError(t, first.Close())

		second, err := NewSQLiteStorage(path, &logger)
		require.NoError(t, err)
		defer second.Close()

		got, err := second.Get(ctx, KeyEntries)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1]`), got)
	})
}
