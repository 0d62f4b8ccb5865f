// Package api exposes the local store over a loopback HTTP API for the
// web UI. The server holds no state of its own: every request re-reads
// the store, the same way the UI layer polls it after user actions.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pathtonaja-debug/naja-sub002/internal/content"
	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
)

// Server is the naja local HTTP API.
type Server struct {
	profiles       *engine.ProfileStore
	goals          *engine.GoalTracker
	content        *content.Client
	metricsEnabled bool
}

func NewServer(profiles *engine.ProfileStore, goals *engine.GoalTracker, contentClient *content.Client) *Server {
	return &Server{profiles: profiles, goals: goals, content: contentClient}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/profile", s.handleGetProfile)
		r.Patch("/profile", s.handlePatchProfile)
		r.Post("/profile/practice", s.handleLogPractice)
		r.Post("/profile/points", s.handleAddPoints)
		r.Post("/profile/streak", s.handleUpdateStreak)
		r.Post("/profile/reset", s.handleResetProfile)

		r.Get("/goal", s.handleGetGoal)
		r.Post("/goal", s.handleSetGoal)
		r.Delete("/goal", s.handleClearGoal)
		r.Post("/goal/tasks/{index}/toggle", s.handleToggleTask)

		r.Get("/practices", s.handleListPractices)

		r.Get("/content/chapters", s.handleChapters)
		r.Get("/content/hijri", s.handleHijri)
		r.Get("/content/tafsirs", s.handleTafsirs)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profileResponse(p))
}

func (s *Server) handlePatchProfile(w http.ResponseWriter, r *http.Request) {
	var patch engine.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid patch body")
		return
	}
	p, err := s.profiles.UpdateProfile(r.Context(), patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profileResponse(p))
}

// handleLogPractice is the main UI flow: extend the streak for today's
// first activity, then award the practice's points. Streak first —
// awarding stamps today as last activity and would turn the streak
// update into a same-day no-op.
func (s *Server) handleLogPractice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Practice string `json:"practice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	practice, err := engine.ParsePractice(body.Practice)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	streak, err := s.profiles.UpdateStreak(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	res, err := s.profiles.AddBarakahPoints(r.Context(), practice.Points)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	practicesLogged.WithLabelValues(practice.Code).Inc()
	pointsAwarded.Add(float64(practice.Points))
	if res.LeveledUp {
		levelUps.Inc()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"practice":  practice,
		"points":    res.Points,
		"leveledUp": res.LeveledUp,
		"newLevel":  res.NewLevel,
		"streak":    streak,
		"profile":   profileResponse(res.Profile),
	})
}

func (s *Server) handleAddPoints(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	res, err := s.profiles.AddBarakahPoints(r.Context(), body.Amount)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	pointsAwarded.Add(float64(body.Amount))
	if res.LeveledUp {
		levelUps.Inc()
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleUpdateStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := s.profiles.UpdateStreak(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"streak": streak})
}

func (s *Server) handleResetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.ResetProfile(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profileResponse(p))
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	g := s.goals.ActiveGoal(r.Context())
	if g == nil {
		writeError(w, http.StatusNotFound, engine.ErrNoActiveGoal.Error())
		return
	}
	day, err := s.goals.CurrentDayNumber(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	completion, err := s.goals.TodayCompletion(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"goal":       g,
		"dayNumber":  day,
		"completion": completion,
	})
}

func (s *Server) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title     string   `json:"goalTitle"`
		Icon      string   `json:"goalIcon"`
		Timeframe int      `json:"timeframe"`
		StartDate string   `json:"startDate"`
		Tasks     []string `json:"tasks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	g, err := s.goals.SetActiveGoal(r.Context(), engine.GoalInput{
		Title:         body.Title,
		Icon:          body.Icon,
		TimeframeDays: body.Timeframe,
		StartDate:     body.StartDate,
		TaskLabels:    body.Tasks,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleClearGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.goals.ClearActiveGoal(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}
	c, err := s.goals.ToggleTask(r.Context(), index)
	if err != nil {
		var idxErr engine.TaskIndexError
		switch {
		case errors.Is(err, engine.ErrNoActiveGoal):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.As(err, &idxErr):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	goalToggles.Inc()
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleListPractices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, engine.Practices())
}

func (s *Server) handleChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := s.content.Chapters(r.Context())
	if err != nil {
		writeContentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chapters)
}

func (s *Server) handleHijri(w http.ResponseWriter, r *http.Request) {
	h, err := s.content.HijriToday(r.Context())
	if err != nil {
		writeContentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleTafsirs(w http.ResponseWriter, r *http.Request) {
	editions, err := s.content.TafsirEditions(r.Context())
	if err != nil {
		writeContentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, editions)
}

func profileResponse(p engine.GuestProfile) map[string]any {
	return map[string]any{
		"profile":  p,
		"title":    p.Title(),
		"progress": p.Progress(),
	}
}

func writeContentError(w http.ResponseWriter, err error) {
	if errors.Is(err, engine.ErrContentUnavailable) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
