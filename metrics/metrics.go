package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP метрики
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calculator_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Метрики калькулятора
	CalculatorOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_operations_total",
			Help: "Total number of calculate operations",
		},
		[]string{"type"}, // success, error
	)

	CalculatorHistorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "calculator_history_size",
			Help: "Current size of calculation history",
		},
	)

	ActiveWebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "calculator_ws_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)
)

// UpdateHistoryMetrics - обновление метрики размера истории
func UpdateHistoryMetrics(historySize int) {
	CalculatorHistorySize.Set(float64(historySize))
}
