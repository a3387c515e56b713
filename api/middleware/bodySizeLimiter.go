package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/shared"
)

// bodySizeLimiter refuses requests whose body is larger than the configured size
type bodySizeLimiter struct {
	maxBodySize int64
}

// NewBodySizeLimiter creates a new instance of a bodySizeLimiter
func NewBodySizeLimiter(maxBodySize int64) (*bodySizeLimiter, error) {
	if maxBodySize <= 0 {
		return nil, ErrInvalidMaxBodySize
	}

	return &bodySizeLimiter{
		maxBodySize: maxBodySize,
	}, nil
}

// MiddlewareHandlerFunc returns the handler func used by the gin server to bound the request bodies.
// Bodies without a declared length are cut at the limit while being read.
func (bsl *bodySizeLimiter) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > bsl.maxBodySize {
			c.AbortWithStatusJSON(
				http.StatusRequestEntityTooLarge,
				shared.GenericAPIResponse{
					Data:  nil,
					Error: ErrRequestBodyTooLarge.Error(),
					Code:  shared.ReturnCodeRequestError,
				},
			)
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bsl.maxBodySize)
		}

		c.Next()
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (bsl *bodySizeLimiter) IsInterfaceNil() bool {
	return bsl == nil
}
