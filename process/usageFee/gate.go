package usageFee

import (
	"context"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/config"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	"github.com/shopspring/decimal"
)

var log = logger.GetOrCreate("process/usageFee")

// ArgsUsageFeeGate holds the arguments needed to create a new usage fee gate
type ArgsUsageFeeGate struct {
	Whitelist process.WhitelistChecker
	Nonces    process.NonceHandler
	Builder   process.TransferBuilder
	Submitter process.TxSubmitter
	Poller    process.ConfirmationPoller
	Metrics   process.MetricsHandler
	Config    config.UsageFeeConfig
}

type usageFeeGate struct {
	whitelist process.WhitelistChecker
	nonces    process.NonceHandler
	builder   process.TransferBuilder
	submitter process.TxSubmitter
	poller    process.ConfirmationPoller
	metrics   process.MetricsHandler
	cfg       config.UsageFeeConfig
}

// NewUsageFeeGate creates the gate that collects the usage fee before a request is admitted.
// The nonce handler must be the same instance used for the real requests.
func NewUsageFeeGate(args ArgsUsageFeeGate) (*usageFeeGate, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &usageFeeGate{
		whitelist: args.Whitelist,
		nonces:    args.Nonces,
		builder:   args.Builder,
		submitter: args.Submitter,
		poller:    args.Poller,
		metrics:   args.Metrics,
		cfg:       args.Config,
	}, nil
}

func checkArgs(args ArgsUsageFeeGate) error {
	if check.IfNil(args.Whitelist) {
		return process.ErrNilWhitelistChecker
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
	if check.IfNil(args.Metrics) {
		return process.ErrNilMetricsHandler
	}
	if !args.Config.Enabled {
		return nil
	}
	if len(args.Config.TreasuryAddress) == 0 {
		return process.ErrEmptyTreasuryAddress
	}
	if len(args.Config.TokenIdentifier) == 0 {
		return process.ErrEmptyFeeToken
	}
	amount, err := decimal.NewFromString(args.Config.Amount)
	if err != nil || !amount.IsPositive() {
		return fmt.Errorf("%w: %q", process.ErrInvalidFeeAmount, args.Config.Amount)
	}

	return nil
}

// Admit returns the hash of the confirmed fee transaction, or an empty string if the sender owes no fee.
// Any outcome other than a successful fee transaction rejects the request.
func (gate *usageFeeGate) Admit(ctx context.Context, sender string, signer process.TxSigner) (string, error) {
	if !gate.cfg.Enabled {
		return "", nil
	}

	isWhitelisted, err := gate.whitelist.IsWhitelisted(sender)
	if err != nil {
		return "", gate.reject(sender, "", err)
	}
	if isWhitelisted {
		gate.metrics.UsageFeeAdmission(process.FeeOutcomeWhitelisted)
		log.Trace("usage fee skipped, sender is whitelisted", "sender", sender)

		return "", nil
	}

	nonce, err := gate.nonces.Acquire(ctx, sender)
	if err != nil {
		return "", gate.reject(sender, "", err)
	}

	feeIntent := &data.TransferIntent{
		Kind:            data.Fungible,
		Sender:          sender,
		Receiver:        gate.cfg.TreasuryAddress,
		Amount:          gate.cfg.Amount,
		TokenIdentifier: gate.cfg.TokenIdentifier,
	}
	tx, err := gate.builder.Build(ctx, feeIntent, nonce)
	if err != nil {
		gate.nonces.Invalidate(sender)
		return "", gate.reject(sender, "", err)
	}

	txHash, err := gate.submitter.Submit(ctx, tx, signer)
	if err != nil {
		gate.nonces.Invalidate(sender)
		return "", gate.reject(sender, "", err)
	}

	status, err := gate.poller.Poll(ctx, txHash)
	if err != nil {
		return "", gate.reject(sender, txHash, err)
	}
	if status != data.StatusSuccess {
		return "", gate.reject(sender, txHash, fmt.Errorf("fee transaction ended with status %s", status))
	}

	gate.metrics.UsageFeeAdmission(process.FeeOutcomePaid)
	log.Debug("usage fee paid", "sender", sender, "nonce", nonce, "hash", txHash)

	return txHash, nil
}

func (gate *usageFeeGate) reject(sender string, txHash string, err error) error {
	gate.metrics.UsageFeeAdmission(process.FeeOutcomeRejected)
	log.Warn("usage fee rejected", "sender", sender, "hash", txHash, "error", err)

	return process.NewTransferError("admit request", sender, txHash, fmt.Errorf("%w: %w", process.ErrUsageFeeRejected, err))
}

// IsInterfaceNil returns true if there is no value under the interface
func (gate *usageFeeGate) IsInterfaceNil() bool {
	return gate == nil
}
