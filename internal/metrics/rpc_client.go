package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchRPCCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "txcodec_fetch",
		Name:      "rpc_calls_total",
		Help:      "Count of node RPC calls made to fetch raw transactions for decoding.",
	}, []string{"operation", "coin", "network", "status"})
	fetchRPCCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "txcodec_fetch",
		Name:      "rpc_call_duration_seconds",
		Help:      "Duration of node RPC calls made to fetch raw transactions for decoding.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation", "coin", "network", "status"})
)

// RPCClient tracks node calls issued by the fetch mode, one observation per
// attempt, so retried fetches show up as several calls.
type RPCClient struct {
	coin    model.Coin
	network model.Network
}

// NewRPCClient constructs the fetch path collector. Empty labels become "unknown".
func NewRPCClient(coin model.Coin, network model.Network) *RPCClient {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{coin: coin, network: network}
}

// Observe records one RPC attempt, e.g. operation "get_raw_transaction".
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	labels := []string{operation, string(m.coin), string(m.network), status}
	fetchRPCCallsTotal.WithLabelValues(labels...).Inc()
	fetchRPCCallDuration.WithLabelValues(labels...).Observe(time.Since(started).Seconds())
}
