// Package metrics объявляет счётчики Prometheus доменных событий.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentsProcessed количество успешно обработанных платежей по способу оплаты.
	PaymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "membership_payments_processed_total",
		Help: "Number of successfully processed payments.",
	}, []string{"payment_method"})

	// StatusTransitions количество смен статуса членства при пересчёте.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "membership_status_transitions_total",
		Help: "Number of membership status transitions recorded by verification.",
	}, []string{"from", "to"})
)
