package data

// TxStatus is the relay's view of a transaction outcome
type TxStatus string

const (
	// StatusPending signals the ledger has not yet reported a terminal state
	StatusPending TxStatus = "pending"
	// StatusSuccess signals the ledger executed the transaction
	StatusSuccess TxStatus = "success"
	// StatusFail signals the ledger reported a failed execution
	StatusFail TxStatus = "fail"
	// StatusUnknown signals the retry budget ran out before a terminal state was reached.
	// The transaction may still land.
	StatusUnknown TxStatus = "unknown"
)

// IsTerminal returns true for the statuses reported by the ledger as final
func (status TxStatus) IsTerminal() bool {
	return status == StatusSuccess || status == StatusFail
}

// SubmissionResult is returned by every single transfer operation
type SubmissionResult struct {
	TransactionID string   `json:"txHash"`
	Status        TxStatus `json:"status"`
	// FeeTransactionID is set when a usage fee was paid before the transfer
	FeeTransactionID string `json:"feeTxHash,omitempty"`
	Nonce            uint64 `json:"nonce"`
}

// BatchItemStatus is the per-item status inside a BatchOutcome
type BatchItemStatus string

const (
	// BatchItemSucceeded marks an item that went through the whole chain
	BatchItemSucceeded BatchItemStatus = "success"
	// BatchItemFailed marks an item whose chain stopped with an error
	BatchItemFailed BatchItemStatus = "failed"
)

// BatchItemOutcome is the outcome of one intent processed inside a batch
type BatchItemOutcome struct {
	ItemKey       string          `json:"key"`
	Status        BatchItemStatus `json:"status"`
	TxStatus      TxStatus        `json:"txStatus,omitempty"`
	TransactionID string          `json:"txHash,omitempty"`
	Error         string          `json:"error,omitempty"`
	Err           error           `json:"-"`
}

// BatchOutcome holds one item per input intent, in input order
type BatchOutcome []BatchItemOutcome

// NumFailed returns how many items failed
func (outcome BatchOutcome) NumFailed() int {
	numFailed := 0
	for _, item := range outcome {
		if item.Status == BatchItemFailed {
			numFailed++
		}
	}

	return numFailed
}
