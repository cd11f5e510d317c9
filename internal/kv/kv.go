// Package kv provides the persistent key-value store the back-office mirrors
// its durable state into: the credential table, the current-session pointer,
// the channel connection flag, and the assistant/settings records.
package kv

import "errors"

// ErrNotFound is returned by Get when the key has never been written or has
// been deleted.
var ErrNotFound = errors.New("kv: key not found")

// Store is a flat key-value store holding serialized JSON documents.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
