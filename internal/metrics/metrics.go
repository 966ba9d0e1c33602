package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	entryAdded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Name:      "entry_added_total",
			Help:      "Count of hydration entries logged by drink category.",
		},
		[]string{"category"},
	)

	entryDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Name:      "entry_deleted_total",
			Help:      "Count of hydration entries deleted by users.",
		},
	)

	goalRecalculated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Name:      "goal_recalculated_total",
			Help:      "Count of daily goal recomputations after profile changes.",
		},
	)

	storageErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Name:      "storage_errors_total",
			Help:      "Count of storage failures by operation.",
		},
		[]string{"op"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(entryAdded, entryDeleted, goalRecalculated, storageErrors)
	})
}

func IncEntryAdded(category string) {
	entryAdded.WithLabelValues(category).Inc()
}

func IncEntryDeleted() {
	entryDeleted.Inc()
}

func IncGoalRecalculated() {
	goalRecalculated.Inc()
}

func IncStorageError(op string) {
	storageErrors.WithLabelValues(op).Inc()
}
