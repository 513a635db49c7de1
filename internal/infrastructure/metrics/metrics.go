package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics covers webhook ingestion and the validation sync queue.
type PaymentMetrics struct {
	WebhooksReceivedTotal      prometheus.CounterVec
	WebhookProcessingDuration  prometheus.HistogramVec
	TransactionsCompletedTotal prometheus.CounterVec
	CompletedAmountTotal       prometheus.CounterVec
	TransactionsFailedTotal    prometheus.CounterVec
	RefundsCompletedTotal      prometheus.CounterVec
	ReconciliationErrorsTotal  prometheus.CounterVec

	ValidationSyncsTotal          prometheus.CounterVec
	ValidationRecordsSyncedTotal  prometheus.Counter
	ValidationRecordsDeletedTotal prometheus.Counter
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		WebhooksReceivedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_webhooks_received_total",
				Help: "Inbound payment webhooks by provider, event type and result",
			},
			[]string{"provider", "event", "result"},
		),

		WebhookProcessingDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_webhook_processing_duration_seconds",
				Help:    "Webhook handling time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"provider"},
		),

		TransactionsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_transactions_completed_total",
				Help: "Transactions transitioned to completed",
			},
			[]string{"provider", "currency"},
		),

		CompletedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_completed_amount_total",
				Help: "Total amount of completed transactions",
			},
			[]string{"provider", "currency"},
		),

		TransactionsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_transactions_failed_total",
				Help: "Transactions transitioned to failed",
			},
			[]string{"provider"},
		),

		RefundsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_refunds_completed_total",
				Help: "Refunds confirmed by the provider",
			},
			[]string{"provider"},
		),

		ReconciliationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_reconciliation_errors_total",
				Help: "Webhook events that could not be matched to local state",
			},
			[]string{"provider", "event"},
		),

		ValidationSyncsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meal_validation_syncs_total",
				Help: "Validation queue flushes by result",
			},
			[]string{"result"},
		),

		ValidationRecordsSyncedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "meal_validation_records_synced_total",
				Help: "Validation records acknowledged by the server",
			},
		),

		ValidationRecordsDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "meal_validation_records_deleted_total",
				Help: "Synced validation records removed by retention",
			},
		),
	}
}

func (m *PaymentMetrics) RecordWebhook(provider, event, result string) {
	m.WebhooksReceivedTotal.WithLabelValues(provider, event, result).Inc()
}

func (m *PaymentMetrics) RecordWebhookDuration(provider string, seconds float64) {
	m.WebhookProcessingDuration.WithLabelValues(provider).Observe(seconds)
}

func (m *PaymentMetrics) RecordTransactionCompleted(provider, currency string, amount float64) {
	m.TransactionsCompletedTotal.WithLabelValues(provider, currency).Inc()
	m.CompletedAmountTotal.WithLabelValues(provider, currency).Add(amount)
}

func (m *PaymentMetrics) RecordTransactionFailed(provider string) {
	m.TransactionsFailedTotal.WithLabelValues(provider).Inc()
}

func (m *PaymentMetrics) RecordRefundCompleted(provider string) {
	m.RefundsCompletedTotal.WithLabelValues(provider).Inc()
}

func (m *PaymentMetrics) RecordReconciliationError(provider, event string) {
	m.ReconciliationErrorsTotal.WithLabelValues(provider, event).Inc()
}

func (m *PaymentMetrics) RecordValidationSync(result string, records int) {
	m.ValidationSyncsTotal.WithLabelValues(result).Inc()
	if records > 0 {
		m.ValidationRecordsSyncedTotal.Add(float64(records))
	}
}

func (m *PaymentMetrics) RecordValidationRetention(deleted int64) {
	if deleted > 0 {
		m.ValidationRecordsDeletedTotal.Add(float64(deleted))
	}
}
