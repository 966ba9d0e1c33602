package storage

import (
	"context"
	"io"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *RedisStorage {
	t.Helper()
	mr := miniredis.RunT(t)

	logger := zerolog.New(io.Discard)
	s, err := NewRedisStorage(mr.Addr(), "", 0, &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRedisStorage(t *testing.T) {
	s := newTestRedis(t)
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
	})

	t.Run("ConnectFailure", func(t *testing.T) {
		logger := zerolog.New(io.Discard)
		_, err := NewRedisStorage("127.0.0.1:1", "", 0, &logger)
		assert.Error(t, err)
	})
}
