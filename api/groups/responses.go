package groups

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/shared"
	"github.com/multiversx/mx-chain-transfer-relay-go/facade"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	"github.com/multiversx/mx-chain-transfer-relay-go/whitelist"
)

type errorMapping struct {
	target     error
	httpStatus int
	code       shared.ReturnCode
}

// the first matching entry wins
var errorMappings = []errorMapping{
	{target: process.ErrInvalidIntent, httpStatus: http.StatusBadRequest, code: shared.ReturnCodeRequestError},
	{target: facade.ErrEmptyBatch, httpStatus: http.StatusBadRequest, code: shared.ReturnCodeRequestError},
	{target: facade.ErrBatchTooLarge, httpStatus: http.StatusRequestEntityTooLarge, code: shared.ReturnCodeRequestError},
	{target: facade.ErrEmptyTxHash, httpStatus: http.StatusBadRequest, code: shared.ReturnCodeRequestError},
	{target: whitelist.ErrInvalidAddress, httpStatus: http.StatusBadRequest, code: shared.ReturnCodeRequestError},
	{target: process.ErrUsageFeeRejected, httpStatus: http.StatusPaymentRequired, code: shared.ReturnCodePaymentRequired},
	{target: process.ErrSignatureFailure, httpStatus: http.StatusForbidden, code: shared.ReturnCodeRequestError},
	{target: process.ErrNonceUnavailable, httpStatus: http.StatusServiceUnavailable, code: shared.ReturnCodeSystemBusy},
	{target: process.ErrTransactionFailed, httpStatus: http.StatusUnprocessableEntity, code: shared.ReturnCodeTransactionFailed},
	{target: process.ErrConfirmationTimeout, httpStatus: http.StatusAccepted, code: shared.ReturnCodeUnconfirmed},
}

func mapError(err error) (int, shared.ReturnCode) {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return mapping.httpStatus, mapping.code
		}
	}

	return http.StatusInternalServerError, shared.ReturnCodeInternalError
}

func respondWithError(c *gin.Context, err error, responseData interface{}) {
	httpStatus, code := mapError(err)
	c.JSON(
		httpStatus,
		shared.GenericAPIResponse{
			Data:  responseData,
			Error: err.Error(),
			Code:  code,
		},
	)
}

func respondWithValidationError(c *gin.Context, err error) {
	c.JSON(
		http.StatusBadRequest,
		shared.GenericAPIResponse{
			Data:  nil,
			Error: err.Error(),
			Code:  shared.ReturnCodeRequestError,
		},
	)
}

func respondWithSuccess(c *gin.Context, responseData interface{}) {
	c.JSON(
		http.StatusOK,
		shared.GenericAPIResponse{
			Data:  responseData,
			Error: "",
			Code:  shared.ReturnCodeSuccess,
		},
	)
}
