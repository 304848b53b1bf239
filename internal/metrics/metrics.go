package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatsearch_searches_total",
			Help: "Total number of search queries served",
		},
		[]string{"cache"},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chatsearch_search_results",
			Help:    "Number of projects matching a query before truncation",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 500},
		},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chatsearch_search_duration_seconds",
			Help:    "Duration of search processing in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	FilterFieldsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatsearch_filter_fields_total",
			Help: "Number of queries in which each filter field was extracted",
		},
		[]string{"field"},
	)

	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatsearch_dataset_records",
			Help: "Number of project records loaded",
		},
	)
)
