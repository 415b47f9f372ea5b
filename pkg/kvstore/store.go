// Package kvstore provides the key-value persistence boundary for the POS
// service. Collections are stored as whole JSON documents under fixed keys
// and rewritten in full on every mutation.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no document exists under the key.
// Absence is a normal condition for callers seeding default state.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is the contract all persistence backends implement.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
