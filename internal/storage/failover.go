package storage

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// recoveryInterval is how long to keep routing around a failed primary
// before probing it again.
const recoveryInterval = time.Minute

// FailoverStorage reads and writes through the primary medium and falls back
// to the secondary when the primary is unreachable, retrying the primary
// after a cooldown. Used when a Redis primary is paired with the local
// SQLite file.
type FailoverStorage struct {
	primary  Storage
	fallback Storage
	logger   *zerolog.Logger

	isDown    atomic.Bool
	mu        sync.Mutex
	lastCheck time.Time
}

// NewFailoverStorage wraps primary with fallback.
func NewFailoverStorage(primary, fallback Storage, logger *zerolog.Logger) *FailoverStorage {
	return &FailoverStorage{primary: primary, fallback: fallback, logger: logger}
}

// usePrimary reports whether the primary should serve this call; a downed
// primary gets probed again once per recovery interval.
func (f *FailoverStorage) usePrimary() bool {
	if !f.isDown.Load() {
		return true
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if time.Since(f.lastCheck) >= recoveryInterval {
		f.lastCheck = time.Now()
		return true
	}
	return false
}

func (f *FailoverStorage) markDown() {
	if f.isDown.CompareAndSwap(false, true) {
		f.logger.Warn().Msg("Primary storage down, using fallback")
	}
	f.mu.Lock()
	f.lastCheck = time.Now()
	f.mu.Unlock()
}

func (f *FailoverStorage) markUp() {
	if f.isDown.CompareAndSwap(true, false) {
		f.logger.Info().Msg("Primary storage recovered")
	}
}

func (f *FailoverStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if f.usePrimary() {
		value, err := f.primary.Get(ctx, key)
		if err == nil || err == ErrNotFound {
			f.markUp()
			return value, err
		}
		f.markDown()
	}
	return f.fallback.Get(ctx, key)
}

func (f *FailoverStorage) Set(ctx context.Context, key string, value []byte) error {
	if f.usePrimary() {
		if err := f.primary.Set(ctx, key, value); err == nil {
			f.markUp()
			return nil
		}
		f.markDown()
	}
	return f.fallback.Set(ctx, key, value)
}

func (f *FailoverStorage) SetMulti(ctx context.Context, records map[string][]byte) error {
	if f.usePrimary() {
		if err := f.primary.SetMulti(ctx, records); err == nil {
			f.markUp()
			return nil
		}
		f.markDown()
	}
	return f.fallback.SetMulti(ctx, records)
}

func (f *FailoverStorage) Delete(ctx context.Context, key string) error {
	if f.usePrimary() {
		if err := f.primary.Delete(ctx, key); err == nil {
			f.markUp()
			return nil
		}
		f.markDown()
	}
	return f.fallback.Delete(ctx, key)
}

func (f *FailoverStorage) Close() error {
	err := f.primary.Close()
	if ferr := f.fallback.Close(); err == nil {
		err = ferr
	}
	return err
}
