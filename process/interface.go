package process

import (
	"context"
	"time"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
)

// LedgerProvider is the gateway towards the ledger: account nonces, broadcasts and status queries
type LedgerProvider interface {
	GetAccountNonce(ctx context.Context, address string) (uint64, error)
	SendTransaction(ctx context.Context, tx *transaction.Transaction) (string, error)
	GetTransactionStatus(ctx context.Context, txHash string) (transaction.TxStatus, error)
	IsInterfaceNil() bool
}

// TxSigner is the signing capability supplied by the key material holder
type TxSigner interface {
	SignTransaction(tx *transaction.Transaction) ([]byte, error)
	Address() string
	IsInterfaceNil() bool
}

// SignerProvider resolves the signing capability of a sender
type SignerProvider interface {
	SignerFor(address string) (TxSigner, error)
	IsInterfaceNil() bool
}

// DecimalsProvider returns the number of decimals of a token
type DecimalsProvider interface {
	GetDecimals(ctx context.Context, tokenIdentifier string) (uint32, error)
	IsInterfaceNil() bool
}

// WhitelistChecker tells if an address is exempted from the usage fee
type WhitelistChecker interface {
	IsWhitelisted(address string) (bool, error)
	IsInterfaceNil() bool
}

// NonceHandler hands out collision-free nonces per sender
type NonceHandler interface {
	Acquire(ctx context.Context, address string) (uint64, error)
	Invalidate(address string)
	IsInterfaceNil() bool
}

// TransferBuilder turns intents into unsigned transactions
type TransferBuilder interface {
	CheckIntent(intent *data.TransferIntent) error
	Build(ctx context.Context, intent *data.TransferIntent, nonce uint64) (*transaction.Transaction, error)
	IsInterfaceNil() bool
}

// TxSubmitter signs and broadcasts a transaction
type TxSubmitter interface {
	Submit(ctx context.Context, tx *transaction.Transaction, signer TxSigner) (string, error)
	IsInterfaceNil() bool
}

// ConfirmationPoller waits for the ledger to report a terminal state for a transaction
type ConfirmationPoller interface {
	Poll(ctx context.Context, txHash string) (data.TxStatus, error)
	IsInterfaceNil() bool
}

// UsageFeeGate charges the usage fee before a real request is admitted. An empty hash means no fee was due.
type UsageFeeGate interface {
	Admit(ctx context.Context, sender string, signer TxSigner) (string, error)
	IsInterfaceNil() bool
}

// BatchWorker processes one intent of a batch
type BatchWorker func(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)

// BatchScheduler runs intents in throttled concurrent groups
type BatchScheduler interface {
	Run(ctx context.Context, intents []*data.TransferIntent, worker BatchWorker) data.BatchOutcome
	IsInterfaceNil() bool
}

// Clock is the time source used for waiting between polls and batch groups
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// MetricsHandler collects the pipeline metrics
type MetricsHandler interface {
	TransactionSubmitted()
	SubmissionFailed(reason string)
	ConfirmationResolved(status data.TxStatus, elapsed time.Duration)
	NonceResynced()
	UsageFeeAdmission(outcome string)
	BatchItemProcessed(status data.BatchItemStatus)
	IsInterfaceNil() bool
}
