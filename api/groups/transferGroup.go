package groups

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/errors"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/shared"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
)

const (
	nativePath       = "/native"
	fungiblePath     = "/fungible"
	nonFungiblePath  = "/non-fungible"
	semiFungiblePath = "/semi-fungible"
	contractCallPath = "/contract-call"
	batchPath        = "/batch"
	rewardsPath      = "/rewards"
	getStatusPath    = "/status/:txhash"
	txHashParamName  = "txhash"
	resultKey        = "result"
	outcomeKey       = "outcome"
	numFailedKey     = "numFailed"
	statusKey        = "status"
	transactionIDKey = "txHash"
)

// transferFacadeHandler defines the relay operations that can be used by the transfer group
type transferFacadeHandler interface {
	TransferNative(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	TransferFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	TransferNonFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	TransferSemiFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	CallContract(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	RunBatch(ctx context.Context, intents []*data.TransferIntent) (data.BatchOutcome, error)
	DistributeRewards(ctx context.Context, distribution *data.RewardDistribution) (data.BatchOutcome, error)
	GetTransactionStatus(ctx context.Context, txHash string) (data.TxStatus, error)
	IsInterfaceNil() bool
}

type transferOperation func(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)

// BatchRequest is the body of the batch endpoint
type BatchRequest struct {
	Intents []*data.TransferIntent `json:"intents"`
}

type transferGroup struct {
	facade transferFacadeHandler
	*baseGroup
}

// NewTransferGroup returns a new instance of transferGroup
func NewTransferGroup(facadeHandler interface{}) (*transferGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(transferFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for transfer group", errors.ErrFacadeWrongTypeAssertion)
	}

	tg := &transferGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	tg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    nativePath,
			Method:  http.MethodPost,
			Handler: tg.transferHandler(facade.TransferNative),
		},
		{
			Path:    fungiblePath,
			Method:  http.MethodPost,
			Handler: tg.transferHandler(facade.TransferFungible),
		},
		{
			Path:    nonFungiblePath,
			Method:  http.MethodPost,
			Handler: tg.transferHandler(facade.TransferNonFungible),
		},
		{
			Path:    semiFungiblePath,
			Method:  http.MethodPost,
			Handler: tg.transferHandler(facade.TransferSemiFungible),
		},
		{
			Path:    contractCallPath,
			Method:  http.MethodPost,
			Handler: tg.transferHandler(facade.CallContract),
		},
		{
			Path:    batchPath,
			Method:  http.MethodPost,
			Handler: tg.runBatch,
		},
		{
			Path:    rewardsPath,
			Method:  http.MethodPost,
			Handler: tg.distributeRewards,
		},
		{
			Path:    getStatusPath,
			Method:  http.MethodGet,
			Handler: tg.getTransactionStatus,
		},
	}

	return tg, nil
}

func (tg *transferGroup) transferHandler(operation transferOperation) gin.HandlerFunc {
	return func(c *gin.Context) {
		intent := &data.TransferIntent{}
		err := c.ShouldBindJSON(intent)
		if err != nil {
			respondWithValidationError(c, fmt.Errorf("%s: %w", errors.ErrValidation.Error(), err))
			return
		}

		result, err := operation(c.Request.Context(), intent)
		if err != nil {
			var responseData interface{}
			if result != nil {
				responseData = gin.H{resultKey: result}
			}
			respondWithError(c, fmt.Errorf("%s: %w", errors.ErrTransfer.Error(), err), responseData)
			return
		}

		respondWithSuccess(c, gin.H{resultKey: result})
	}
}

func (tg *transferGroup) runBatch(c *gin.Context) {
	request := &BatchRequest{}
	err := c.ShouldBindJSON(request)
	if err != nil {
		respondWithValidationError(c, fmt.Errorf("%s: %w", errors.ErrValidation.Error(), err))
		return
	}

	outcome, err := tg.facade.RunBatch(c.Request.Context(), request.Intents)
	tg.respondWithOutcome(c, outcome, err)
}

func (tg *transferGroup) distributeRewards(c *gin.Context) {
	distribution := &data.RewardDistribution{}
	err := c.ShouldBindJSON(distribution)
	if err != nil {
		respondWithValidationError(c, fmt.Errorf("%s: %w", errors.ErrValidation.Error(), err))
		return
	}

	outcome, err := tg.facade.DistributeRewards(c.Request.Context(), distribution)
	tg.respondWithOutcome(c, outcome, err)
}

func (tg *transferGroup) respondWithOutcome(c *gin.Context, outcome data.BatchOutcome, err error) {
	if err != nil {
		respondWithError(c, fmt.Errorf("%s: %w", errors.ErrBatch.Error(), err), nil)
		return
	}

	respondWithSuccess(c, gin.H{outcomeKey: outcome, numFailedKey: outcome.NumFailed()})
}

func (tg *transferGroup) getTransactionStatus(c *gin.Context) {
	txHash := c.Param(txHashParamName)
	if len(txHash) == 0 {
		respondWithValidationError(c, fmt.Errorf("%s: %w", errors.ErrValidation.Error(), errors.ErrValidationEmptyTxHash))
		return
	}

	status, err := tg.facade.GetTransactionStatus(c.Request.Context(), txHash)
	if err != nil {
		respondWithError(c, fmt.Errorf("%s: %w", errors.ErrGetTransactionStatus.Error(), err), nil)
		return
	}

	respondWithSuccess(c, gin.H{transactionIDKey: txHash, statusKey: status})
}

// IsInterfaceNil returns true if there is no value under the interface
func (tg *transferGroup) IsInterfaceNil() bool {
	return tg == nil
}
