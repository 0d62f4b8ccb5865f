package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestContentCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewContentCache(newTestKV(t))
	c.now = fixedClock(t, "2024-01-10")

	if _, ok := c.Lookup(ctx, CacheChapters); ok {
		t.Fatalf("empty cache reported a hit")
	}
	if c.Fresh(ctx, CacheChapters) {
		t.Fatalf("empty cache reported fresh")
	}

	payload := json.RawMessage(`[{"number":1,"englishName":"Al-Faatiha"}]`)
	if err := c.Put(ctx, CacheChapters, payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok := c.Lookup(ctx, CacheChapters)
	if !ok {
		t.Fatalf("lookup missed after put")
	}
	if string(got) != string(payload) {
		t.Fatalf("lookup = %s, want %s", got, payload)
	}
	if !c.Fresh(ctx, CacheChapters) {
		t.Fatalf("just-stored record not fresh")
	}
}

func TestContentCacheFreshnessWindows(t *testing.T) {
	ctx := context.Background()
	c := NewContentCache(newTestKV(t))
	c.now = fixedClock(t, "2024-01-10")

	for _, kind := range []CacheKind{CacheChapters, CacheHijri, CacheTafsir} {
		if err := c.Put(ctx, kind, json.RawMessage(`{"x":1}`)); err != nil {
			t.Fatalf("put %s: %v", kind, err)
		}
	}

	// Two days later the daily Hijri record has expired; the month-scale
	// collections have not.
	base := c.now()
	c.now = func() time.Time { return base.Add(48 * time.Hour) }

	if c.Fresh(ctx, CacheHijri) {
		t.Fatalf("hijri record fresh after 48h")
	}
	if !c.Fresh(ctx, CacheChapters) || !c.Fresh(ctx, CacheTafsir) {
		t.Fatalf("month-scale records expired after 48h")
	}

	// Stale data is still retrievable.
	if _, ok := c.Lookup(ctx, CacheHijri); !ok {
		t.Fatalf("stale hijri record not retrievable")
	}

	c.now = func() time.Time { return base.Add(31 * 24 * time.Hour) }
	if c.Fresh(ctx, CacheChapters) {
		t.Fatalf("chapters record fresh after 31 days")
	}
}

func TestContentCacheCorruptRecord(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	c := NewContentCache(kv)
	c.now = fixedClock(t, "2024-01-10")

	if err := kv.Set(ctx, "naja_cache:chapters", "not json at all"); err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}
	if _, ok := c.Lookup(ctx, CacheChapters); ok {
		t.Fatalf("corrupt record surfaced as a hit")
	}

	// Missing timestamp is also rejected.
	if err := kv.Set(ctx, "naja_cache:chapters", `{"data":[1,2,3]}`); err != nil {
		t.Fatalf("seed timestampless record: %v", err)
	}
	if c.Fresh(ctx, CacheChapters) {
		t.Fatalf("timestampless record reported fresh")
	}
}
