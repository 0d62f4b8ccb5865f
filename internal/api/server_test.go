package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pathtonaja-debug/naja-sub002/internal/config"
	"github.com/pathtonaja-debug/naja-sub002/internal/content"
	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
	"github.com/pathtonaja-debug/naja-sub002/internal/store"
)

func newTestServer(t *testing.T, upstream string) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	db, err := store.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.ContentConfig{QuranAPI: upstream, AladhanAPI: upstream}
	srv := NewServer(
		engine.NewProfileStore(db),
		engine.NewGoalTracker(db),
		content.NewClient(cfg, engine.NewContentCache(db)),
	)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func deadUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(s.Close)
	return s
}

func doJSON(t *testing.T, method, url string, body string, into any) int {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if into != nil {
		if err := json.NewDecoder(resp.Body).Decode(into); err != nil && err != io.EOF {
			t.Fatalf("decode %s %s: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, deadUpstream(t).URL)

	var body map[string]string
	if code := doJSON(t, http.MethodGet, ts.URL+"/health", "", &body); code != http.StatusOK {
		t.Fatalf("health status %d", code)
	}
	if body["status"] != "ok" {
		t.Fatalf("health body %v", body)
	}
}

func TestProfileEndpoints(t *testing.T) {
	ts := newTestServer(t, deadUpstream(t).URL)

	var got struct {
		Profile  engine.GuestProfile  `json:"profile"`
		Title    string               `json:"title"`
		Progress engine.LevelProgress `json:"progress"`
	}
	if code := doJSON(t, http.MethodGet, ts.URL+"/api/profile", "", &got); code != http.StatusOK {
		t.Fatalf("get profile status %d", code)
	}
	if got.Profile.ID == "" || got.Profile.Level != 1 {
		t.Fatalf("fresh profile %+v", got.Profile)
	}
	if got.Title != "Seeker" {
		t.Fatalf("title %q", got.Title)
	}
	originalID := got.Profile.ID

	// Log a practice: streak extends, points land.
	var logged struct {
		Points    int             `json:"points"`
		LeveledUp bool            `json:"leveledUp"`
		Streak    int             `json:"streak"`
		Profile   map[string]any  `json:"profile"`
		Practice  engine.Practice `json:"practice"`
	}
	code := doJSON(t, http.MethodPost, ts.URL+"/api/profile/practice", `{"practice":"fajr"}`, &logged)
	if code != http.StatusOK {
		t.Fatalf("log practice status %d", code)
	}
	if logged.Streak != 1 {
		t.Fatalf("streak %d, want 1", logged.Streak)
	}
	if logged.Points != logged.Practice.Points || logged.Points <= 0 {
		t.Fatalf("points %d vs practice %+v", logged.Points, logged.Practice)
	}

	// Unknown practice rejected.
	if code := doJSON(t, http.MethodPost, ts.URL+"/api/profile/practice", `{"practice":"netflix"}`, nil); code != http.StatusBadRequest {
		t.Fatalf("unknown practice status %d", code)
	}

	// Patch the display name.
	if code := doJSON(t, http.MethodPatch, ts.URL+"/api/profile", `{"displayName":"Aisha"}`, &got); code != http.StatusOK {
		t.Fatalf("patch status %d", code)
	}
	if got.Profile.DisplayName != "Aisha" {
		t.Fatalf("patched name %q", got.Profile.DisplayName)
	}

	// Reset wipes progress but keeps identity.
	if code := doJSON(t, http.MethodPost, ts.URL+"/api/profile/reset", "", &got); code != http.StatusOK {
		t.Fatalf("reset status %d", code)
	}
	if got.Profile.ID != originalID {
		t.Fatalf("reset changed id: %q then %q", originalID, got.Profile.ID)
	}
	if got.Profile.BarakahPoints != 0 || got.Profile.HasanatStreak != 0 {
		t.Fatalf("reset left progress: %+v", got.Profile)
	}
}

func TestAddPointsLevelUp(t *testing.T) {
	ts := newTestServer(t, deadUpstream(t).URL)

	var res engine.AwardResult
	if code := doJSON(t, http.MethodPost, ts.URL+"/api/profile/points", `{"amount":120}`, &res); code != http.StatusOK {
		t.Fatalf("add points status %d", code)
	}
	if !res.LeveledUp || res.NewLevel != 2 {
		t.Fatalf("award result %+v, want level 2 with leveledUp", res)
	}
}

func TestGoalEndpoints(t *testing.T) {
	ts := newTestServer(t, deadUpstream(t).URL)

	if code := doJSON(t, http.MethodGet, ts.URL+"/api/goal", "", nil); code != http.StatusNotFound {
		t.Fatalf("get goal with none active: status %d", code)
	}

	var g engine.GoalConfig
	body := `{"goalTitle":"Quran month","goalIcon":"📖","timeframe":30,"tasks":["Read one page","Review hifdh"]}`
	if code := doJSON(t, http.MethodPost, ts.URL+"/api/goal", body, &g); code != http.StatusCreated {
		t.Fatalf("set goal status %d", code)
	}
	if g.ID == "" || g.TimeframeDays != 30 || len(g.Tasks) != 2 {
		t.Fatalf("created goal %+v", g)
	}

	if code := doJSON(t, http.MethodPost, ts.URL+"/api/goal", `{"goalTitle":"","timeframe":0}`, nil); code != http.StatusBadRequest {
		t.Fatalf("invalid goal status %d", code)
	}

	var status struct {
		DayNumber  int                     `json:"dayNumber"`
		Completion *engine.DailyCompletion `json:"completion"`
	}
	if code := doJSON(t, http.MethodGet, ts.URL+"/api/goal", "", &status); code != http.StatusOK {
		t.Fatalf("get goal status %d", code)
	}
	if status.DayNumber != 1 {
		t.Fatalf("day number %d, want 1", status.DayNumber)
	}
	if status.Completion != nil {
		t.Fatalf("completion before first toggle: %+v", status.Completion)
	}

	var c engine.DailyCompletion
	if code := doJSON(t, http.MethodPost, ts.URL+"/api/goal/tasks/0/toggle", "", &c); code != http.StatusOK {
		t.Fatalf("toggle status %d", code)
	}
	if !c.TasksCompleted[0] || c.DoneCount() != 1 {
		t.Fatalf("completion after toggle %+v", c)
	}

	if code := doJSON(t, http.MethodPost, ts.URL+"/api/goal/tasks/9/toggle", "", nil); code != http.StatusBadRequest {
		t.Fatalf("out-of-range toggle status %d", code)
	}
	if code := doJSON(t, http.MethodPost, ts.URL+"/api/goal/tasks/x/toggle", "", nil); code != http.StatusBadRequest {
		t.Fatalf("non-numeric toggle status %d", code)
	}

	if code := doJSON(t, http.MethodDelete, ts.URL+"/api/goal", "", nil); code != http.StatusNoContent {
		t.Fatalf("clear goal status %d", code)
	}
	if code := doJSON(t, http.MethodGet, ts.URL+"/api/goal", "", nil); code != http.StatusNotFound {
		t.Fatalf("get goal after clear: status %d", code)
	}
	if code := doJSON(t, http.MethodPost, ts.URL+"/api/goal/tasks/0/toggle", "", nil); code != http.StatusNotFound {
		t.Fatalf("toggle with no goal: status %d", code)
	}
}

func TestPracticesEndpoint(t *testing.T) {
	ts := newTestServer(t, deadUpstream(t).URL)

	var practices []engine.Practice
	if code := doJSON(t, http.MethodGet, ts.URL+"/api/practices", "", &practices); code != http.StatusOK {
		t.Fatalf("practices status %d", code)
	}
	if len(practices) == 0 {
		t.Fatalf("no practices listed")
	}
}

func TestContentEndpoints(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/surah" {
			fmt.Fprint(w, `{"data":[{"number":1,"englishName":"Al-Faatiha","numberOfAyahs":7}]}`)
			return
		}
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	ts := newTestServer(t, upstream.URL)

	var chapters []content.Chapter
	if code := doJSON(t, http.MethodGet, ts.URL+"/api/content/chapters", "", &chapters); code != http.StatusOK {
		t.Fatalf("chapters status %d", code)
	}
	if len(chapters) != 1 || chapters[0].EnglishName != "Al-Faatiha" {
		t.Fatalf("chapters %+v", chapters)
	}

	// Tafsir upstream 404s and nothing is cached: 503.
	if code := doJSON(t, http.MethodGet, ts.URL+"/api/content/tafsirs", "", nil); code != http.StatusServiceUnavailable {
		t.Fatalf("tafsirs status %d, want 503", code)
	}
}
