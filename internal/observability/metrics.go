package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperations counts store operations by collection and operation type.
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_store_operations_total",
		Help: "Total number of store operations by collection and operation",
	}, []string{"collection", "operation"})

	// StoreErrors counts failed store operations by collection and operation type.
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_store_errors_total",
		Help: "Total number of failed store operations by collection and operation",
	}, []string{"collection", "operation"})

	// FeedRefreshes counts feed refresh passes by trigger (action or timer).
	FeedRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_feed_refreshes_total",
		Help: "Total number of feed refresh passes by trigger",
	}, []string{"trigger"})

	// FeedRefreshErrors counts refresh passes that failed.
	FeedRefreshErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_feed_refresh_errors_total",
		Help: "Total number of failed feed refresh passes by trigger",
	}, []string{"trigger"})

	// SessionOperations counts session slot operations by type.
	SessionOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_session_operations_total",
		Help: "Total number of session slot operations by operation",
	}, []string{"operation"})
)
