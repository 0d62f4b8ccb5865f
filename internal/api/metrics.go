package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	practicesLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naja_practices_logged_total",
		Help: "Practices logged through the API, by practice code.",
	}, []string{"practice"})

	pointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "naja_barakah_points_awarded_total",
		Help: "Total Barakah points awarded through the API.",
	})

	levelUps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "naja_level_ups_total",
		Help: "Level-ups observed on awards through the API.",
	})

	goalToggles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "naja_goal_task_toggles_total",
		Help: "Goal task toggles through the API.",
	})
)
