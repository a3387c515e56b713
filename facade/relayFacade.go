package facade

import (
	"context"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

var log = logger.GetOrCreate("facade")

// ArgsRelayFacade holds the components the relay facade drives
type ArgsRelayFacade struct {
	Ledger       process.LedgerProvider
	Signers      process.SignerProvider
	Nonces       process.NonceHandler
	Builder      process.TransferBuilder
	Submitter    process.TxSubmitter
	Poller       process.ConfirmationPoller
	UsageFee     process.UsageFeeGate
	Scheduler    process.BatchScheduler
	Whitelist    WhitelistHandler
	MaxBatchSize int
}

// relayFacade chains the usage fee gate, the nonce sequencer, the builder, the submitter and the poller
type relayFacade struct {
	ledger       process.LedgerProvider
	signers      process.SignerProvider
	nonces       process.NonceHandler
	builder      process.TransferBuilder
	submitter    process.TxSubmitter
	poller       process.ConfirmationPoller
	usageFee     process.UsageFeeGate
	scheduler    process.BatchScheduler
	whitelist    WhitelistHandler
	maxBatchSize int
}

// NewRelayFacade creates a new relay facade
func NewRelayFacade(args ArgsRelayFacade) (*relayFacade, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &relayFacade{
		ledger:       args.Ledger,
		signers:      args.Signers,
		nonces:       args.Nonces,
		builder:      args.Builder,
		submitter:    args.Submitter,
		poller:       args.Poller,
		usageFee:     args.UsageFee,
		scheduler:    args.Scheduler,
		whitelist:    args.Whitelist,
		maxBatchSize: args.MaxBatchSize,
	}, nil
}

func checkArgs(args ArgsRelayFacade) error {
	if check.IfNil(args.Ledger) {
		return process.ErrNilLedgerProvider
	}
	if check.IfNil(args.Signers) {
		return process.ErrNilSignerProvider
	}
	if check.IfNil(args.Nonces) {
		return process.ErrNilNonceHandler
	}
	if check.IfNil(args.Builder) {
		return process.ErrNilTransferBuilder
	}
	if check.IfNil(args.Submitter) {
		return process.ErrNilSubmitter
	}
	if check.IfNil(args.Poller) {
		return process.ErrNilConfirmationPoller
	}
	if check.IfNil(args.UsageFee) {
		return process.ErrNilUsageFeeGate
	}
	if check.IfNil(args.Scheduler) {
		return process.ErrNilBatchScheduler
	}
	if check.IfNil(args.Whitelist) {
		return ErrNilWhitelistHandler
	}
	if args.MaxBatchSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxBatchSize, args.MaxBatchSize)
	}

	return nil
}

// TransferNative moves EGLD
func (rf *relayFacade) TransferNative(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	return rf.transferKind(ctx, intent, data.Native)
}

// TransferFungible moves an ESDT amount
func (rf *relayFacade) TransferFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	return rf.transferKind(ctx, intent, data.Fungible)
}

// TransferNonFungible moves one NFT
func (rf *relayFacade) TransferNonFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	return rf.transferKind(ctx, intent, data.NonFungible)
}

// TransferSemiFungible moves a quantity of an SFT
func (rf *relayFacade) TransferSemiFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	return rf.transferKind(ctx, intent, data.SemiFungible)
}

// CallContract calls a smart contract endpoint, optionally with native value attached
func (rf *relayFacade) CallContract(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	return rf.transferKind(ctx, intent, data.ContractCall)
}

func (rf *relayFacade) transferKind(ctx context.Context, intent *data.TransferIntent, kind data.TransferKind) (*data.SubmissionResult, error) {
	if intent == nil {
		return nil, fmt.Errorf("%w: nil intent", process.ErrInvalidIntent)
	}

	kindIntent := *intent
	if len(kindIntent.Kind) == 0 {
		kindIntent.Kind = kind
	}
	if kindIntent.Kind != kind {
		return nil, fmt.Errorf("%w: %w, expected %s, got %s", process.ErrInvalidIntent, ErrKindMismatch, kind, kindIntent.Kind)
	}

	return rf.transfer(ctx, &kindIntent)
}

// transfer runs one intent through the whole chain. The returned result is not nil as soon as a transaction
// hash exists, even if an error is returned, so the caller can reconcile with the ledger.
func (rf *relayFacade) transfer(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	err := rf.builder.CheckIntent(intent)
	if err != nil {
		return nil, err
	}

	signer, err := rf.signers.SignerFor(intent.Sender)
	if err != nil {
		return nil, process.NewTransferError("resolve signer", intent.Sender, "", fmt.Errorf("%w: %w", process.ErrSignatureFailure, err))
	}

	feeTxHash, err := rf.usageFee.Admit(ctx, intent.Sender, signer)
	if err != nil {
		return nil, err
	}

	nonce, err := rf.nonces.Acquire(ctx, intent.Sender)
	if err != nil {
		return nil, err
	}

	tx, err := rf.builder.Build(ctx, intent, nonce)
	if err != nil {
		rf.nonces.Invalidate(intent.Sender)
		return nil, err
	}

	txHash, err := rf.submitter.Submit(ctx, tx, signer)
	if err != nil {
		rf.nonces.Invalidate(intent.Sender)
		return nil, err
	}

	result := &data.SubmissionResult{
		TransactionID:    txHash,
		Status:           data.StatusPending,
		FeeTransactionID: feeTxHash,
		Nonce:            nonce,
	}
	log.Debug("transaction sent", "kind", intent.Kind, "sender", intent.Sender, "nonce", nonce, "hash", txHash)

	// the nonce is consumed once the ledger accepted the transaction, whatever the outcome
	result.Status, err = rf.poller.Poll(ctx, txHash)
	if err != nil {
		return result, err
	}
	if result.Status == data.StatusFail {
		return result, process.NewTransferError("execute transaction", intent.Sender, txHash, process.ErrTransactionFailed)
	}

	log.Info("transfer done", "kind", intent.Kind, "sender", intent.Sender, "receiver", intent.Receiver, "hash", txHash)

	return result, nil
}

// RunBatch runs every intent through the whole chain, in throttled concurrent groups
func (rf *relayFacade) RunBatch(ctx context.Context, intents []*data.TransferIntent) (data.BatchOutcome, error) {
	if len(intents) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(intents) > rf.maxBatchSize {
		return nil, fmt.Errorf("%w: %d intents, at most %d allowed", ErrBatchTooLarge, len(intents), rf.maxBatchSize)
	}

	outcome := rf.scheduler.Run(ctx, intents, rf.transfer)
	log.Info("batch processed", "num items", len(outcome), "num failed", outcome.NumFailed())
	displayBatchOutcome(outcome)

	return outcome, nil
}

// DistributeRewards pays every share of the distribution as a fungible transfer, through RunBatch
func (rf *relayFacade) DistributeRewards(ctx context.Context, distribution *data.RewardDistribution) (data.BatchOutcome, error) {
	if distribution == nil || len(distribution.Shares) == 0 {
		return nil, ErrEmptyBatch
	}

	return rf.RunBatch(ctx, distribution.Intents())
}

// GetTransactionStatus returns the current relay status of an already sent transaction
func (rf *relayFacade) GetTransactionStatus(ctx context.Context, txHash string) (data.TxStatus, error) {
	if len(txHash) == 0 {
		return "", ErrEmptyTxHash
	}

	ledgerStatus, err := rf.ledger.GetTransactionStatus(ctx, txHash)
	if err != nil {
		return "", process.NewTransferError("get transaction status", "", txHash, err)
	}

	return process.StatusFromLedger(ledgerStatus), nil
}

// AddToWhitelist exempts the address from the usage fee
func (rf *relayFacade) AddToWhitelist(address string) error {
	return rf.whitelist.Add(address)
}

// RemoveFromWhitelist removes the usage fee exemption of the address
func (rf *relayFacade) RemoveFromWhitelist(address string) error {
	return rf.whitelist.Remove(address)
}

// GetWhitelist returns the whitelisted addresses
func (rf *relayFacade) GetWhitelist() ([]string, error) {
	return rf.whitelist.List()
}

// IsInterfaceNil returns true if there is no value under the interface
func (rf *relayFacade) IsInterfaceNil() bool {
	return rf == nil
}
