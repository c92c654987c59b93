package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxibot", Name: "orders_created_total", Help: "Total ride orders created"})
	OffersMade      = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxibot", Name: "offers_made_total", Help: "Total driver offers submitted"})
	OrdersAccepted  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxibot", Name: "orders_accepted_total", Help: "Total orders finalized with a driver"})
	AcceptanceRaces = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxibot", Name: "acceptance_races_lost_total", Help: "Acceptance attempts rejected because the order was no longer available"})
	RatingsRecorded = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxibot", Name: "ratings_recorded_total", Help: "Total ride ratings recorded"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "taxibot", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "taxibot",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
