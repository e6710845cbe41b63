package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics содержит метрики операций над заказами.
type OrderMetrics struct {
	// Счётчики жизненного цикла
	ordersCreated   prometheus.Counter
	ordersFinalized prometheus.Counter
	ordersCancelled prometheus.Counter

	// Счётчики отправки писем
	emailsSent   prometheus.Counter
	emailsFailed prometheus.Counter

	// Гистограмма длительности операций сервиса
	operationDuration *prometheus.HistogramVec
}

// NewOrderMetrics создаёт метрики и регистрирует их в default registry.
// Повторная регистрация безопасна: возвращаются уже существующие коллекторы.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_orders_created_total",
			Help: "Total number of orders created",
		}),
		ordersFinalized: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_orders_finalized_total",
			Help: "Total number of orders finalized",
		}),
		ordersCancelled: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_orders_cancelled_total",
			Help: "Total number of orders cancelled",
		}),
		emailsSent: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_finalization_emails_sent_total",
			Help: "Total number of finalization emails sent successfully",
		}),
		emailsFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pedidos_finalization_emails_failed_total",
			Help: "Total number of finalization emails that failed to send",
		}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "pedidos_order_operation_duration_seconds",
			Help:    "Duration of order service operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"operation"}),
	}
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *OrderMetrics) RecordOrderCreated() { m.ordersCreated.Inc() }

// RecordOrderFinalized увеличивает счётчик финализированных заказов.
func (m *OrderMetrics) RecordOrderFinalized() { m.ordersFinalized.Inc() }

// RecordOrderCancelled увеличивает счётчик отменённых заказов.
func (m *OrderMetrics) RecordOrderCancelled() { m.ordersCancelled.Inc() }

// RecordEmailSent увеличивает счётчик успешно отправленных писем.
func (m *OrderMetrics) RecordEmailSent() { m.emailsSent.Inc() }

// RecordEmailFailed увеличивает счётчик неудачных отправок писем.
func (m *OrderMetrics) RecordEmailFailed() { m.emailsFailed.Inc() }

// RecordOperationDuration фиксирует длительность операции сервиса.
func (m *OrderMetrics) RecordOperationDuration(operation string, d time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}
