package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks AMM activity for the node's prometheus endpoint.
type Metrics struct {
	PoolsCreated prometheus.Counter
	Swaps        *prometheus.CounterVec
	SwapVolume   *prometheus.CounterVec
	Liquidity    *prometheus.CounterVec
	FlashBorrows *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metricsInst *Metrics
)

// NewMetrics returns the process-wide AMM metrics set. Collectors register
// with the default registry exactly once.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInst = &Metrics{
			PoolsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "vortex",
				Subsystem: "amm",
				Name:      "pools_created_total",
				Help:      "Total number of pools created",
			}),
			Swaps: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "vortex",
				Subsystem: "amm",
				Name:      "swaps_total",
				Help:      "Total swaps by result",
			}, []string{"result"}),
			SwapVolume: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "vortex",
				Subsystem: "amm",
				Name:      "swap_volume",
				Help:      "Cumulative swap input volume by asset",
			}, []string{"asset"}),
			Liquidity: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "vortex",
				Subsystem: "amm",
				Name:      "liquidity_events_total",
				Help:      "Liquidity additions and removals",
			}, []string{"action"}),
			FlashBorrows: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "vortex",
				Subsystem: "amm",
				Name:      "flash_borrows_total",
				Help:      "Total flash borrows by result",
			}, []string{"result"}),
		}
	})
	return metricsInst
}

func (m *Metrics) recordPoolCreated() {
	if m == nil {
		return
	}
	m.PoolsCreated.Inc()
}

func (m *Metrics) recordSwap(result string, asset string, volume float64) {
	if m == nil {
		return
	}
	m.Swaps.WithLabelValues(result).Inc()
	if result == "ok" {
		m.SwapVolume.WithLabelValues(asset).Add(volume)
	}
}

func (m *Metrics) recordLiquidity(action string) {
	if m == nil {
		return
	}
	m.Liquidity.WithLabelValues(action).Inc()
}

func (m *Metrics) recordFlashBorrow(result string) {
	if m == nil {
		return
	}
	m.FlashBorrows.WithLabelValues(result).Inc()
}
