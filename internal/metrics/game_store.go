package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

var (
	storeRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kingofthehill",
		Subsystem: "game_store",
		Name:      "refresh_total",
		Help:      "Count of completed refresh cycles.",
	}, []string{"network", "status"})

	storeRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kingofthehill",
		Subsystem: "game_store",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of a full refresh cycle.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	storeRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kingofthehill",
		Subsystem: "game_store",
		Name:      "retries_total",
		Help:      "Count of automatic refresh retries after rate limiting.",
	}, []string{"network", "attempt"})

	storeSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kingofthehill",
		Subsystem: "game_store",
		Name:      "submissions_total",
		Help:      "Count of bid and withdraw submissions.",
	}, []string{"network", "kind", "status"})

	storeSubmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kingofthehill",
		Subsystem: "game_store",
		Name:      "submission_duration_seconds",
		Help:      "Duration from submission to confirmation.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
	}, []string{"network", "kind", "status"})
)

// GameStore tracks metrics for the game state store.
type GameStore struct {
	network string
}

// NewGameStore constructs a GameStore collector with defaults.
func NewGameStore(network string) *GameStore {
	if network == "" {
		network = "unknown"
	}
	return &GameStore{network: network}
}

// ObserveRefresh records a refresh cycle outcome and duration.
func (m GameStore) ObserveRefresh(err error, started time.Time) {
	status := statusOf(err)
	storeRefreshTotal.WithLabelValues(m.network, status).Inc()
	storeRefreshDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveRetry records an automatic retry attempt.
func (m GameStore) ObserveRetry(attempt int) {
	storeRetriesTotal.WithLabelValues(m.network, strconv.Itoa(attempt)).Inc()
}

// ObserveSubmission records a bid or withdraw submission.
func (m GameStore) ObserveSubmission(kind model.OperationKind, err error, started time.Time) {
	status := statusOf(err)
	storeSubmissionsTotal.WithLabelValues(m.network, string(kind), status).Inc()
	storeSubmissionDuration.WithLabelValues(m.network, string(kind), status).Observe(time.Since(started).Seconds())
}
