package statusHandler

import (
	"net/http"
	"time"

	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "relay"

// PrometheusMetricsHandler exposes the relay pipeline metrics in the prometheus format
type PrometheusMetricsHandler struct {
	registry             *prometheus.Registry
	submitted            prometheus.Counter
	submissionFailures   *prometheus.CounterVec
	confirmations        *prometheus.CounterVec
	confirmationDuration prometheus.Histogram
	nonceResyncs         prometheus.Counter
	usageFeeAdmissions   *prometheus.CounterVec
	batchItems           *prometheus.CounterVec
}

// NewPrometheusMetricsHandler creates the metrics handler with its own registry
func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	pmh := &PrometheusMetricsHandler{
		registry: prometheus.NewRegistry(),
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "transactions_submitted_total",
			Help:      "Number of transactions signed and accepted by the gateway",
		}),
		submissionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "submission_failures_total",
			Help:      "Number of transactions that could not be signed or broadcast",
		}, []string{"reason"}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "confirmations_total",
			Help:      "Number of resolved confirmations, by final status",
		}, []string{"status"}),
		confirmationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "confirmation_duration_seconds",
			Help:      "Time spent waiting for a terminal transaction status",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 9),
		}),
		nonceResyncs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "nonce_resyncs_total",
			Help:      "Number of account nonces fetched from the ledger",
		}),
		usageFeeAdmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "usage_fee_admissions_total",
			Help:      "Usage fee gate decisions, by outcome",
		}, []string{"outcome"}),
		batchItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "batch_items_total",
			Help:      "Number of processed batch items, by status",
		}, []string{"status"}),
	}

	pmh.registry.MustRegister(
		pmh.submitted,
		pmh.submissionFailures,
		pmh.confirmations,
		pmh.confirmationDuration,
		pmh.nonceResyncs,
		pmh.usageFeeAdmissions,
		pmh.batchItems,
	)

	return pmh
}

// TransactionSubmitted counts a broadcast transaction
func (pmh *PrometheusMetricsHandler) TransactionSubmitted() {
	pmh.submitted.Inc()
}

// SubmissionFailed counts a signing or broadcast failure
func (pmh *PrometheusMetricsHandler) SubmissionFailed(reason string) {
	pmh.submissionFailures.WithLabelValues(reason).Inc()
}

// ConfirmationResolved counts a resolved confirmation and records how long it took
func (pmh *PrometheusMetricsHandler) ConfirmationResolved(status data.TxStatus, elapsed time.Duration) {
	pmh.confirmations.WithLabelValues(string(status)).Inc()
	pmh.confirmationDuration.Observe(elapsed.Seconds())
}

// NonceResynced counts a nonce fetched from the ledger
func (pmh *PrometheusMetricsHandler) NonceResynced() {
	pmh.nonceResyncs.Inc()
}

// UsageFeeAdmission counts a usage fee gate decision
func (pmh *PrometheusMetricsHandler) UsageFeeAdmission(outcome string) {
	pmh.usageFeeAdmissions.WithLabelValues(outcome).Inc()
}

// BatchItemProcessed counts a processed batch item
func (pmh *PrometheusMetricsHandler) BatchItemProcessed(status data.BatchItemStatus) {
	pmh.batchItems.WithLabelValues(string(status)).Inc()
}

// Handler returns the http handler serving the registered metrics
func (pmh *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.HandlerFor(pmh.registry, promhttp.HandlerOpts{})
}

// IsInterfaceNil returns true if there is no value under the interface
func (pmh *PrometheusMetricsHandler) IsInterfaceNil() bool {
	return pmh == nil
}
