package groups

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/errors"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/shared"
)

const prometheusMetricsPath = "/prometheus"

type metricsGroup struct {
	*baseGroup
}

// NewMetricsGroup returns a group that exposes the relay metrics in the prometheus text format
func NewMetricsGroup(metricsHandler http.Handler) (*metricsGroup, error) {
	if metricsHandler == nil {
		return nil, errors.ErrNilMetricsHandler
	}

	mg := &metricsGroup{
		baseGroup: &baseGroup{},
	}
	mg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    prometheusMetricsPath,
			Method:  http.MethodGet,
			Handler: gin.WrapH(metricsHandler),
		},
	}

	return mg, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (mg *metricsGroup) IsInterfaceNil() bool {
	return mg == nil
}
