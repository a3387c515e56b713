package groups

import (
	"strings"

	"github.com/gin-gonic/gin"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/shared"
	"github.com/multiversx/mx-chain-transfer-relay-go/config"
)

var log = logger.GetOrCreate("api/groups")

type baseGroup struct {
	endpoints []*shared.EndpointHandlerData
}

// GetEndpoints returns all the endpoints specific to the group
func (bg *baseGroup) GetEndpoints() []*shared.EndpointHandlerData {
	return bg.endpoints
}

// RegisterRoutes will register all the open endpoints of the group to the given web server
func (bg *baseGroup) RegisterRoutes(ws *gin.RouterGroup, apiConfig config.ApiRoutesConfig) {
	for _, handlerData := range bg.endpoints {
		if !isEndpointOpen(ws, handlerData.Path, apiConfig) {
			log.Debug("endpoint is closed", "path", handlerData.Path)
			continue
		}

		handlers := make([]gin.HandlerFunc, 0, len(handlerData.Middlewares)+1)
		handlers = append(handlers, handlerData.Middlewares...)
		handlers = append(handlers, handlerData.Handler)
		ws.Handle(handlerData.Method, handlerData.Path, handlers...)
	}
}

func isEndpointOpen(ws *gin.RouterGroup, path string, apiConfig config.ApiRoutesConfig) bool {
	// ws.BasePath will return paths like /group or /v1.0/group so we need the last token after splitting by /
	splitPath := strings.Split(ws.BasePath(), "/")
	groupName := splitPath[len(splitPath)-1]

	return config.IsRouteOpen(apiConfig, groupName, path)
}

// IsInterfaceNil returns true if there is no value under the interface
func (bg *baseGroup) IsInterfaceNil() bool {
	return bg == nil
}
