package store

import (
	"context"
	"encoding/json"
)

// KV is the synchronous string-keyed storage medium the core runs on.
// It is the Go counterpart of the browser localStorage the app grew up
// with: one writer, no concurrency control, last write wins.
type KV interface {
	// Get returns the raw value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// KeyLister is an optional extension for media that can enumerate keys
// by prefix. The SQLite medium implements it; pure map fakes may not.
type KeyLister interface {
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Validatable lets a record type reject structurally bad data after a
// syntactically successful decode. ReadJSON treats an invalid record the
// same as a missing one.
type Validatable interface {
	Valid() bool
}

// ReadJSON decodes the JSON stored under key into a value of type T.
// Missing keys, storage errors, malformed JSON, and records failing
// their own Valid() check all yield fallback. It never returns an error:
// corruption is absence, by contract.
func ReadJSON[T any](ctx context.Context, kv KV, key string, fallback T) T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	if c, ok := any(v).(Validatable); ok && !c.Valid() {
		return fallback
	}
	return v
}

// WriteJSON encodes v and stores it under key. Unlike reads, write
// failures are reported so callers can surface a "failed to save"
// notice instead of silently dropping in-memory state.
func WriteJSON[T any](ctx context.Context, kv KV, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, string(b))
}
