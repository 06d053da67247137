// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DailyDraws counts first-of-the-day rotation draws per game.
	// Cached replays of an existing selection do not count.
	DailyDraws = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "royalehaus_daily_draws_total",
		Help: "Number of daily card draws that advanced the rotation bag.",
	}, []string{"game"})

	// ProgressMerges counts progress sync operations.
	ProgressMerges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "royalehaus_progress_merges_total",
		Help: "Number of progress snapshots merged and persisted.",
	})
)
