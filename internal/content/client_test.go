package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pathtonaja-debug/naja-sub002/internal/config"
	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
	"github.com/pathtonaja-debug/naja-sub002/internal/store"
)

func newTestClient(t *testing.T, baseURL string) (*Client, *store.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := store.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.ContentConfig{QuranAPI: baseURL, AladhanAPI: baseURL}
	return NewClient(cfg, engine.NewContentCache(db)), db
}

const chaptersBody = `{"data":[
	{"number":1,"name":"سورة الفاتحة","englishName":"Al-Faatiha","englishNameTranslation":"The Opening","numberOfAyahs":7,"revelationType":"Meccan"},
	{"number":2,"name":"سورة البقرة","englishName":"Al-Baqara","englishNameTranslation":"The Cow","numberOfAyahs":286,"revelationType":"Medinan"}
]}`

func TestChaptersFetchThenCache(t *testing.T) {
	ctx := context.Background()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/surah" {
			http.NotFound(w, r)
			return
		}
		hits++
		fmt.Fprint(w, chaptersBody)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	chapters, err := c.Chapters(ctx)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if len(chapters) != 2 || chapters[0].EnglishName != "Al-Faatiha" || chapters[1].NumberOfAyahs != 286 {
		t.Fatalf("chapters = %+v", chapters)
	}
	if hits != 1 {
		t.Fatalf("hits after first fetch = %d", hits)
	}

	// Second call is served from the fresh cache.
	if _, err := c.Chapters(ctx); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if hits != 1 {
		t.Fatalf("fresh cache did not short-circuit the network: hits = %d", hits)
	}
}

func TestChaptersStaleFallback(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, db := newTestClient(t, srv.URL)

	// A record far past its TTL: stale, but still last-known-good.
	stale := fmt.Sprintf(`{"data":[{"number":1,"englishName":"Al-Faatiha","numberOfAyahs":7}],"timestamp":%d}`,
		time.Now().Add(-90*24*time.Hour).UnixMilli())
	if err := db.Set(ctx, "naja_cache:chapters", stale); err != nil {
		t.Fatalf("seed stale record: %v", err)
	}

	chapters, err := c.Chapters(ctx)
	if err != nil {
		t.Fatalf("stale fallback errored: %v", err)
	}
	if len(chapters) != 1 || chapters[0].EnglishName != "Al-Faatiha" {
		t.Fatalf("stale fallback data = %+v", chapters)
	}
}

func TestChaptersUnavailable(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	_, err := c.Chapters(ctx)
	if !errors.Is(err, engine.ErrContentUnavailable) {
		t.Fatalf("err = %v, want ErrContentUnavailable", err)
	}
}

func TestHijriToday(t *testing.T) {
	ctx := context.Background()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"data":{"hijri":{
			"date":"29-06-1445",
			"day":"29",
			"weekday":{"en":"Al-Thulaathaa"},
			"month":{"number":6,"en":"Jumādá al-ākhirah"},
			"year":"1445",
			"holidays":[]
		}}}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	c.now = func() time.Time {
		d, _ := time.Parse("2006-01-02", "2024-01-09")
		return d
	}

	h, err := c.HijriToday(ctx)
	if err != nil {
		t.Fatalf("hijri: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/gToH/09-01-2024") {
		t.Fatalf("request path %q, want gToH with today's dd-mm-yyyy date", gotPath)
	}
	if h.Month != "Jumādá al-ākhirah" || h.MonthNumber != 6 || h.Year != "1445" {
		t.Fatalf("hijri = %+v", h)
	}
}

func TestTafsirEditions(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/edition/type/tafsir" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"data":[{"identifier":"en.jalalayn","language":"en","name":"Jalalayn","englishName":"Tafsir al-Jalalayn"}]}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	eds, err := c.TafsirEditions(ctx)
	if err != nil {
		t.Fatalf("tafsirs: %v", err)
	}
	if len(eds) != 1 || eds[0].Identifier != "en.jalalayn" {
		t.Fatalf("editions = %+v", eds)
	}
}
