package testscommon

import (
	"time"

	"github.com/multiversx/mx-chain-transfer-relay-go/data"
)

// MetricsHandlerStub -
type MetricsHandlerStub struct {
	TransactionSubmittedCalled func()
	SubmissionFailedCalled     func(reason string)
	ConfirmationResolvedCalled func(status data.TxStatus, elapsed time.Duration)
	NonceResyncedCalled        func()
	UsageFeeAdmissionCalled    func(outcome string)
	BatchItemProcessedCalled   func(status data.BatchItemStatus)
}

// TransactionSubmitted -
func (stub *MetricsHandlerStub) TransactionSubmitted() {
	if stub.TransactionSubmittedCalled != nil {
		stub.TransactionSubmittedCalled()
	}
}

// SubmissionFailed -
func (stub *MetricsHandlerStub) SubmissionFailed(reason string) {
	if stub.SubmissionFailedCalled != nil {
		stub.SubmissionFailedCalled(reason)
	}
}

// ConfirmationResolved -
func (stub *MetricsHandlerStub) ConfirmationResolved(status data.TxStatus, elapsed time.Duration) {
	if stub.ConfirmationResolvedCalled != nil {
		stub.ConfirmationResolvedCalled(status, elapsed)
	}
}

// NonceResynced -
func (stub *MetricsHandlerStub) NonceResynced() {
	if stub.NonceResyncedCalled != nil {
		stub.NonceResyncedCalled()
	}
}

// UsageFeeAdmission -
func (stub *MetricsHandlerStub) UsageFeeAdmission(outcome string) {
	if stub.UsageFeeAdmissionCalled != nil {
		stub.UsageFeeAdmissionCalled(outcome)
	}
}

// BatchItemProcessed -
func (stub *MetricsHandlerStub) BatchItemProcessed(status data.BatchItemStatus) {
	if stub.BatchItemProcessedCalled != nil {
		stub.BatchItemProcessedCalled(status)
	}
}

// IsInterfaceNil -
func (stub *MetricsHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
