package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersCreated prometheus.Counter
	TransferDuration prometheus.Histogram
	TransferAmount   prometheus.Histogram
	TransferErrors   *prometheus.CounterVec
	ConflictRetries  prometheus.Counter

	// Party metrics
	PartiesCreated *prometheus.CounterVec

	// Cache metrics
	RecordCacheHits   prometheus.Counter
	RecordCacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_transfers_created_total",
			Help: "Total number of transfers committed",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "walletd_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "walletd_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_transfer_errors_total",
				Help: "Total number of transfer errors by type",
			},
			[]string{"error_type"},
		),
		ConflictRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_conflict_retries_total",
			Help: "Total number of transfer attempts retried after a storage conflict",
		}),
		PartiesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_parties_created_total",
				Help: "Total number of parties created by kind",
			},
			[]string{"kind"},
		),
		RecordCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_record_cache_hits_total",
			Help: "Total number of record lookups served from cache",
		}),
		RecordCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_record_cache_misses_total",
			Help: "Total number of record lookups that missed the cache",
		}),
	}
}
