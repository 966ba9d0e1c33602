// Package storage provides the key-value persistence medium behind the
// hydration store. Records are JSON blobs addressed by well-known keys and
// always replaced whole.
package storage

import (
	"context"
	"errors"
)

// Well-known record keys. The layout mirrors the mobile app's local store so
// existing on-device data can be imported as-is.
const (
	KeyEntries  = "hydration_entries"
	KeySettings = "user_settings"
	KeyProfile  = "user_profile"
)

// ErrNotFound is returned by Get when no record exists under the key.
var ErrNotFound = errors.New("record not found")

// Storage is the persistence medium for the hydration store. Implementations
// must make SetMulti atomic: either every key is written or none is.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMulti(ctx context.Context, records map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
