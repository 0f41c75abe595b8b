package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the module's Prometheus collectors. All call sites are
// nil-safe so test keepers can run without a registry.
type Metrics struct {
	SwapsTotal  *prometheus.CounterVec
	SwapVolume  *prometheus.CounterVec
	SwapLatency prometheus.Histogram

	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// moduleMetrics lazily initializes the collectors against the default
// registry. promauto panics on duplicate registration, hence the Once.
func moduleMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "swaps_total",
				Help:      "Total number of executed swaps",
			}, []string{"token_in", "token_out"}),
			SwapVolume: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "swap_volume",
				Help:      "Cumulative swap input volume per token",
			}, []string{"token"}),
			SwapLatency: promauto.NewHistogram(prometheus.HistogramOpts{
				Namespace: "amm",
				Name:      "swap_latency_seconds",
				Help:      "Swap execution latency",
				Buckets:   prometheus.DefBuckets,
			}),
			LiquidityAdded: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "liquidity_added",
				Help:      "Cumulative deposited amount per token",
			}, []string{"token"}),
			LiquidityRemoved: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "amm",
				Name:      "liquidity_removed",
				Help:      "Cumulative withdrawn amount per token",
			}, []string{"token"}),
			PoolReserves: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "amm",
				Name:      "pool_reserves",
				Help:      "Current pool reserve per token",
			}, []string{"token"}),
		}
	})
	return metrics
}

// intToFloat converts a math.Int to float64 for metric recording. Amounts
// past float range degrade to +Inf, which Prometheus tolerates; exact values
// stay in the store, not the metrics.
func intToFloat(v math.Int) float64 {
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}
