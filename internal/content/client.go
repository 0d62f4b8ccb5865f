// Package content fetches semi-static reference data (chapter list,
// Hijri calendar, tafsir editions) from external read-only APIs,
// wired through the local content cache.
//
// Policy: a fresh cached copy is used without touching the network; a
// stale copy triggers a live fetch but is still served if the fetch
// fails; an empty cache plus a failed fetch surfaces
// engine.ErrContentUnavailable.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pathtonaja-debug/naja-sub002/internal/config"
	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
)

// Client is the read-only client for the external content APIs.
type Client struct {
	httpc       *http.Client
	cache       *engine.ContentCache
	quranBase   string
	aladhanBase string
	now         func() time.Time
}

func NewClient(cfg config.ContentConfig, cache *engine.ContentCache) *Client {
	return &Client{
		httpc:       &http.Client{Timeout: 15 * time.Second},
		cache:       cache,
		quranBase:   strings.TrimRight(cfg.QuranAPI, "/"),
		aladhanBase: strings.TrimRight(cfg.AladhanAPI, "/"),
		now:         time.Now,
	}
}

// Chapters returns the full surah list.
func (c *Client) Chapters(ctx context.Context) ([]Chapter, error) {
	return cachedFetch(ctx, c, engine.CacheChapters, c.fetchChapters)
}

// HijriToday returns today's Hijri calendar date.
func (c *Client) HijriToday(ctx context.Context) (HijriDate, error) {
	return cachedFetch(ctx, c, engine.CacheHijri, c.fetchHijriToday)
}

// TafsirEditions returns the available tafsir editions.
func (c *Client) TafsirEditions(ctx context.Context) ([]TafsirEdition, error) {
	return cachedFetch(ctx, c, engine.CacheTafsir, c.fetchTafsirEditions)
}

// cachedFetch implements the cache-first policy for one collection
// kind. Cache write failures after a successful fetch are swallowed:
// the caller still gets live data.
func cachedFetch[T any](ctx context.Context, c *Client, kind engine.CacheKind, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if c.cache.Fresh(ctx, kind) {
		if v, ok := lookupAs[T](ctx, c, kind); ok {
			return v, nil
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		if stale, ok := lookupAs[T](ctx, c, kind); ok {
			return stale, nil
		}
		return zero, fmt.Errorf("%w: %v", engine.ErrContentUnavailable, err)
	}

	if b, merr := json.Marshal(v); merr == nil {
		_ = c.cache.Put(ctx, kind, b)
	}
	return v, nil
}

func lookupAs[T any](ctx context.Context, c *Client, kind engine.CacheKind) (T, bool) {
	var v T
	raw, ok := c.cache.Lookup(ctx, kind)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}
	return v, true
}

func (c *Client) fetchChapters(ctx context.Context) ([]Chapter, error) {
	var env struct {
		Data []Chapter `json:"data"`
	}
	if err := c.getJSON(ctx, c.quranBase+"/surah", &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("empty chapter list")
	}
	return env.Data, nil
}

func (c *Client) fetchHijriToday(ctx context.Context) (HijriDate, error) {
	gregorian := c.now().Format("02-01-2006")
	var env struct {
		Data struct {
			Hijri struct {
				Date    string `json:"date"`
				Day     string `json:"day"`
				Weekday struct {
					En string `json:"en"`
				} `json:"weekday"`
				Month struct {
					Number int    `json:"number"`
					En     string `json:"en"`
				} `json:"month"`
				Year     string   `json:"year"`
				Holidays []string `json:"holidays"`
			} `json:"hijri"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, c.aladhanBase+"/gToH/"+gregorian, &env); err != nil {
		return HijriDate{}, err
	}
	h := env.Data.Hijri
	if h.Date == "" {
		return HijriDate{}, fmt.Errorf("empty hijri response")
	}
	return HijriDate{
		Date:        h.Date,
		Day:         h.Day,
		Weekday:     h.Weekday.En,
		Month:       h.Month.En,
		MonthNumber: h.Month.Number,
		Year:        h.Year,
		Holidays:    h.Holidays,
	}, nil
}

func (c *Client) fetchTafsirEditions(ctx context.Context) ([]TafsirEdition, error) {
	var env struct {
		Data []TafsirEdition `json:"data"`
	}
	if err := c.getJSON(ctx, c.quranBase+"/edition/type/tafsir", &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("empty tafsir edition list")
	}
	return env.Data, nil
}

func (c *Client) getJSON(ctx context.Context, url string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
