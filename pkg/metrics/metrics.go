package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "growthdesk", Name: "documents_created_total", Help: "Number of documents created by collection."},
		[]string{"collection"},
	)
	ListQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "growthdesk", Name: "list_queries_total", Help: "Number of list queries by collection."},
		[]string{"collection"},
	)
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "growthdesk", Name: "store_errors_total", Help: "Number of failed store operations by operation type."},
		[]string{"op"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "growthdesk", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "growthdesk", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsCreated)
	reg.MustRegister(ListQueries)
	reg.MustRegister(StoreErrors)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
