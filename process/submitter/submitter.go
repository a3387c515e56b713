package submitter

import (
	"context"
	"errors"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

var log = logger.GetOrCreate("process/submitter")

var errEmptySignature = errors.New("empty signature")

// ArgsSubmitter holds the arguments needed to create a new submitter
type ArgsSubmitter struct {
	Ledger  process.LedgerProvider
	Metrics process.MetricsHandler
}

type submitter struct {
	ledger  process.LedgerProvider
	metrics process.MetricsHandler
}

// NewSubmitter creates a component that signs a transaction exactly once and broadcasts it exactly once
func NewSubmitter(args ArgsSubmitter) (*submitter, error) {
	if check.IfNil(args.Ledger) {
		return nil, process.ErrNilLedgerProvider
	}
	if check.IfNil(args.Metrics) {
		return nil, process.ErrNilMetricsHandler
	}

	return &submitter{
		ledger:  args.Ledger,
		metrics: args.Metrics,
	}, nil
}

// Submit signs the transaction and broadcasts it, returning the transaction hash. Broadcast failures are not
// retried, picking a new nonce is up to the caller.
func (s *submitter) Submit(ctx context.Context, tx *transaction.Transaction, signer process.TxSigner) (string, error) {
	if tx == nil {
		return "", process.ErrNilTransaction
	}
	if check.IfNil(signer) {
		return "", process.ErrNilSigner
	}

	sender := signer.Address()
	if len(tx.Signature) > 0 {
		return "", process.NewTransferError("sign transaction", sender, "", process.ErrTransactionAlreadySigned)
	}

	signature, err := signer.SignTransaction(tx)
	if err == nil && len(signature) == 0 {
		err = errEmptySignature
	}
	if err != nil {
		s.metrics.SubmissionFailed(process.ReasonSignature)
		return "", process.NewTransferError("sign transaction", sender, "", fmt.Errorf("%w: %v", process.ErrSignatureFailure, err))
	}
	tx.Signature = signature

	txHash, err := s.ledger.SendTransaction(ctx, tx)
	if err != nil {
		s.metrics.SubmissionFailed(process.ReasonBroadcast)
		log.Debug("transaction rejected", "sender", sender, "nonce", tx.Nonce, "error", err)
		return "", process.NewTransferError("broadcast transaction", sender, "", fmt.Errorf("%w: %v", process.ErrBroadcastFailure, err))
	}

	s.metrics.TransactionSubmitted()
	log.Debug("transaction sent", "hash", txHash, "sender", sender, "nonce", tx.Nonce)

	return txHash, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *submitter) IsInterfaceNil() bool {
	return s == nil
}
