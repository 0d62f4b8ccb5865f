package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pathtonaja-debug/naja-sub002/internal/store"
)

// CacheKind identifies one cached remote collection.
type CacheKind string

const (
	CacheChapters CacheKind = "chapters"
	CacheHijri    CacheKind = "hijri"
	CacheTafsir   CacheKind = "tafsir"
)

// TTL returns the freshness window for the kind. The Hijri date changes
// daily; chapter and tafsir lists are month-scale reference data.
// Staleness is advisory only: stale data is still served when a live
// fetch fails.
func (k CacheKind) TTL() time.Duration {
	switch k {
	case CacheHijri:
		return 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

func (k CacheKind) key() string {
	return "naja_cache:" + string(k)
}

// cachedRecord is the persisted shape: the raw collection plus a unix
// millisecond fetch timestamp.
type cachedRecord struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

func (r cachedRecord) Valid() bool {
	return len(r.Data) > 0 && r.Timestamp > 0
}

// ContentCache is the stale-while-revalidate-ish cache for semi-static
// remote reference data. There is no background revalidation: the
// calling layer compares TTLs on its own cold-start path.
type ContentCache struct {
	kv  store.KV
	now func() time.Time
}

func NewContentCache(kv store.KV) *ContentCache {
	return &ContentCache{kv: kv, now: time.Now}
}

// Lookup returns the cached collection regardless of freshness. This is
// both the fast path ("use it immediately if present") and the
// last-known-good fallback when a live fetch fails.
func (c *ContentCache) Lookup(ctx context.Context, kind CacheKind) (json.RawMessage, bool) {
	rec := store.ReadJSON(ctx, c.kv, kind.key(), cachedRecord{})
	if !rec.Valid() {
		return nil, false
	}
	return rec.Data, true
}

// Fresh reports whether the cached collection is within its TTL. A
// missing record is never fresh.
func (c *ContentCache) Fresh(ctx context.Context, kind CacheKind) bool {
	rec := store.ReadJSON(ctx, c.kv, kind.key(), cachedRecord{})
	if !rec.Valid() {
		return false
	}
	fetchedAt := time.UnixMilli(rec.Timestamp)
	return c.now().Sub(fetchedAt) <= kind.TTL()
}

// Put stores a freshly fetched collection with the current timestamp.
func (c *ContentCache) Put(ctx context.Context, kind CacheKind, data json.RawMessage) error {
	rec := cachedRecord{Data: data, Timestamp: c.now().UnixMilli()}
	return store.WriteJSON(ctx, c.kv, kind.key(), rec)
}
