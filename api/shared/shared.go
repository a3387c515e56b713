package shared

import (
	"github.com/gin-gonic/gin"
)

// ReturnCode defines the type defines to identify return codes
type ReturnCode string

const (
	// ReturnCodeSuccess defines a successful request
	ReturnCodeSuccess ReturnCode = "successful"

	// ReturnCodeInternalError defines a request which hasn't been executed successfully due to an internal error
	ReturnCodeInternalError ReturnCode = "internal_issue"

	// ReturnCodeRequestError defines a request which hasn't been executed successfully due to a bad request received
	ReturnCodeRequestError ReturnCode = "bad_request"

	// ReturnCodeSystemBusy defines a request which hasn't been executed successfully due to too many requests
	ReturnCodeSystemBusy ReturnCode = "system_busy"

	// ReturnCodePaymentRequired defines a request rejected because the usage fee could not be collected
	ReturnCodePaymentRequired ReturnCode = "payment_required"

	// ReturnCodeTransactionFailed defines a request whose transaction was executed with a fail status
	ReturnCodeTransactionFailed ReturnCode = "transaction_failed"

	// ReturnCodeUnauthorized defines a request rejected because of missing or wrong credentials
	ReturnCodeUnauthorized ReturnCode = "unauthorized"

	// ReturnCodeUnconfirmed defines a request whose transaction was broadcast but not confirmed in time
	ReturnCodeUnconfirmed ReturnCode = "unconfirmed"
)

// GenericAPIResponse defines the structure of all responses on API endpoints
type GenericAPIResponse struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
	Code  ReturnCode  `json:"code"`
}

// EndpointHandlerData holds the items needed for creating a new gin HTTP endpoint
type EndpointHandlerData struct {
	Path        string
	Method      string
	Handler     gin.HandlerFunc
	Middlewares []gin.HandlerFunc
}
