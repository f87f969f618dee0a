// Package metrics exposes Prometheus collectors for codec and node operations.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	codecOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "txcodec",
		Name:      "operations_total",
		Help:      "Count of transaction codec operations.",
	}, []string{"operation", "coin", "network", "status"})
	codecOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "txcodec",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction codec operations.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
	}, []string{"operation", "coin", "network", "status"})
	codecBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "txcodec",
		Name:      "bytes_total",
		Help:      "Bytes of raw transactions handled by the codec.",
	}, []string{"operation", "coin", "network"})
)

// Codec tracks metrics for transaction decode and conversion.
type Codec struct {
	coin    model.Coin
	network model.Network
}

// NewCodec constructs a metrics collector for codec operations.
func NewCodec(coin model.Coin, network model.Network) *Codec {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Codec{coin: coin, network: network}
}

// Observe records a single codec operation outcome, its input size and duration.
func (m Codec) Observe(operation string, size int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	codecOperationsTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	codecOperationDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).Observe(time.Since(started).Seconds())
	if size > 0 {
		codecBytesTotal.WithLabelValues(operation, string(m.coin), string(m.network)).Add(float64(size))
	}
}
