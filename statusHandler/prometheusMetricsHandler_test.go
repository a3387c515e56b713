package statusHandler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	prometheusUtils "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewPrometheusMetricsHandler(t *testing.T) {
	t.Parallel()

	var metrics process.MetricsHandler = NewPrometheusMetricsHandler()
	assert.False(t, check.IfNil(metrics))
}

func TestPrometheusMetricsHandler_Counters(t *testing.T) {
	t.Parallel()

	pmh := NewPrometheusMetricsHandler()

	pmh.TransactionSubmitted()
	pmh.TransactionSubmitted()
	assert.Equal(t, float64(2), prometheusUtils.ToFloat64(pmh.submitted))

	pmh.SubmissionFailed(process.ReasonBroadcast)
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(pmh.submissionFailures.WithLabelValues(process.ReasonBroadcast)))
	assert.Equal(t, float64(0), prometheusUtils.ToFloat64(pmh.submissionFailures.WithLabelValues(process.ReasonSignature)))

	pmh.ConfirmationResolved(data.StatusSuccess, time.Second*6)
	pmh.ConfirmationResolved(data.StatusUnknown, time.Minute*2)
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(pmh.confirmations.WithLabelValues(string(data.StatusSuccess))))
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(pmh.confirmations.WithLabelValues(string(data.StatusUnknown))))
	assert.Equal(t, 1, prometheusUtils.CollectAndCount(pmh.confirmationDuration))

	pmh.NonceResynced()
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(pmh.nonceResyncs))

	pmh.UsageFeeAdmission(process.FeeOutcomeWhitelisted)
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(pmh.usageFeeAdmissions.WithLabelValues(process.FeeOutcomeWhitelisted)))

	pmh.BatchItemProcessed(data.BatchItemFailed)
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(pmh.batchItems.WithLabelValues(string(data.BatchItemFailed))))
}

func TestPrometheusMetricsHandler_Handler(t *testing.T) {
	t.Parallel()

	pmh := NewPrometheusMetricsHandler()
	pmh.TransactionSubmitted()

	recorder := httptest.NewRecorder()
	pmh.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(recorder.Body)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, string(body), "relay_transactions_submitted_total 1")
}
