package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	OrdersSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_saved_total",
			Help: "Number of orders persisted, by database backend",
		},
		[]string{"database"},
	)
	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Number of notifications delivered, by channel",
		},
		[]string{"channel"},
	)
	OrdersProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_processed_total",
			Help: "Number of orders fully processed (saved + notified)",
		},
	)
)

var (
	PaymentsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_processed_total",
			Help: "Number of successful payments, by method",
		},
		[]string{"method"},
	)
	PaymentsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_rejected_total",
			Help: "Number of payments rejected by validation, by method",
		},
		[]string{"method"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует коллекторы; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(OrdersSaved, NotificationsSent, OrdersProcessed, PaymentsProcessed, PaymentsRejected)
	})
}
