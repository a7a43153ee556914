// Package metrics содержит метрики Prometheus сервера отзывов.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal считает HTTP-запросы по методу, шаблону маршрута и классу статуса.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewboard_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration: длительность обработки запроса в секундах.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reviewboard_request_duration_seconds",
			Help:    "Request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthFailuresTotal: отказы аутентификации (missing, invalid, unknown_user, bad_credentials).
	AuthFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewboard_auth_failures_total",
			Help: "Authentication failures",
		},
		[]string{"reason"},
	)

	// OwnershipDenialsTotal: попытки изменить чужой отзыв или комментарий.
	OwnershipDenialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewboard_ownership_denials_total",
			Help: "Mutations rejected by the ownership check",
		},
		[]string{"resource"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		AuthFailuresTotal,
		OwnershipDenialsTotal,
	)
}
