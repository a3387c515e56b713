package shared

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-transfer-relay-go/config"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
)

// GroupHandler defines the actions needed to be performed by a gin API group
type GroupHandler interface {
	RegisterRoutes(ws *gin.RouterGroup, apiConfig config.ApiRoutesConfig)
	IsInterfaceNil() bool
}

// MiddlewareProcessor defines a processor used internally by the web server when processing requests
type MiddlewareProcessor interface {
	MiddlewareHandlerFunc() gin.HandlerFunc
	IsInterfaceNil() bool
}

// HttpServerCloser defines the basic actions of starting and closing that a web server should be able to do
type HttpServerCloser interface {
	Start()
	Close() error
	IsInterfaceNil() bool
}

// FacadeHandler defines all the methods the relay exposes over REST
type FacadeHandler interface {
	TransferNative(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	TransferFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	TransferNonFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	TransferSemiFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	CallContract(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	RunBatch(ctx context.Context, intents []*data.TransferIntent) (data.BatchOutcome, error)
	DistributeRewards(ctx context.Context, distribution *data.RewardDistribution) (data.BatchOutcome, error)
	GetTransactionStatus(ctx context.Context, txHash string) (data.TxStatus, error)
	AddToWhitelist(address string) error
	RemoveFromWhitelist(address string) error
	GetWhitelist() ([]string, error)
	IsInterfaceNil() bool
}
