package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// AMMMetrics holds all Prometheus metrics for the amm module
type AMMMetrics struct {
	// Swap metrics
	SwapsTotal  *prometheus.CounterVec
	SwapVolume  *prometheus.CounterVec
	SwapLatency prometheus.Histogram

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	LPTokenSupply    *prometheus.GaugeVec

	// Flash loan metrics
	FlashLoans *prometheus.CounterVec

	FeeBps          prometheus.Gauge
	OperationErrors *prometheus.CounterVec
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *AMMMetrics
)

// NewAMMMetrics creates and registers amm metrics (singleton pattern)
func NewAMMMetrics() *AMMMetrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &AMMMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool_id", "asset_in", "asset_out", "kind"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pool_id", "asset"},
			),
			SwapLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "swap_latency_seconds",
					Help:      "Swap execution latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "liquidity_added_total",
					Help:      "Total number of liquidity deposits",
				},
				[]string{"pool_id"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "liquidity_removed_total",
					Help:      "Total number of liquidity withdrawals",
				},
				[]string{"pool_id"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "pool_reserves",
					Help:      "Current pool reserves",
				},
				[]string{"pool_id", "asset"},
			),
			LPTokenSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "lp_token_supply",
					Help:      "Outstanding LP tokens per pool",
				},
				[]string{"pool_id"},
			),
			FlashLoans: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "flash_loans_total",
					Help:      "Flash loans by outcome",
				},
				[]string{"asset", "status"},
			),
			FeeBps: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "swap_fee_bps",
					Help:      "Current swap fee in basis points",
				},
			),
			OperationErrors: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "pawswap",
					Subsystem: "amm",
					Name:      "operation_errors_total",
					Help:      "Failed operations by kind",
				},
				[]string{"operation"},
			),
		}
	})
	return ammMetrics
}

func (m *AMMMetrics) recordPool(poolID types.AssetID, pool types.Pool) {
	id := poolID.String()
	m.PoolReserves.WithLabelValues(id, pool.Pair.Asset1.String()).Set(toFloat(pool.Pair.Amount1))
	m.PoolReserves.WithLabelValues(id, pool.Pair.Asset2.String()).Set(toFloat(pool.Pair.Amount2))
	m.LPTokenSupply.WithLabelValues(id).Set(toFloat(pool.LPSupply))
}

func (m *AMMMetrics) forgetPool(poolID types.AssetID) {
	id := poolID.String()
	m.PoolReserves.DeletePartialMatch(prometheus.Labels{"pool_id": id})
	m.LPTokenSupply.DeleteLabelValues(id)
}

func toFloat(x math.Int) float64 {
	f, _ := new(big.Float).SetInt(x.BigInt()).Float64()
	return f
}
