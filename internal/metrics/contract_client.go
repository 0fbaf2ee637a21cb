package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contractCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kingofthehill",
		Subsystem: "contract_client",
		Name:      "operations_total",
		Help:      "Count of contract read and write operations.",
	}, []string{"operation", "network", "status"})
	contractCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kingofthehill",
		Subsystem: "contract_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of contract read and write operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ContractClient tracks metrics for calls made through the contract gateway.
type ContractClient struct {
	network string
}

// NewContractClient constructs a metrics collector for contract calls.
func NewContractClient(network string) *ContractClient {
	if network == "" {
		network = "unknown"
	}
	return &ContractClient{network: network}
}

// Observe records a single contract call outcome and duration.
func (m ContractClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	contractCallsTotal.WithLabelValues(operation, m.network, status).Inc()
	contractCallDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
