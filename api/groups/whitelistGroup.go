package groups

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/errors"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/shared"
	"github.com/multiversx/mx-chain-transfer-relay-go/config"
)

const (
	listWhitelistPath   = ""
	addressPath         = config.WhitelistAddressRoute
	addressParamName    = "address"
	addressesKey        = "addresses"
	isWhitelistedKey    = "whitelisted"
	whitelistAddressKey = "address"
)

// whitelistFacadeHandler defines the whitelist operations that can be used by the whitelist group
type whitelistFacadeHandler interface {
	AddToWhitelist(address string) error
	RemoveFromWhitelist(address string) error
	GetWhitelist() ([]string, error)
	IsInterfaceNil() bool
}

type whitelistGroup struct {
	facade whitelistFacadeHandler
	*baseGroup
}

// NewWhitelistGroup returns a new instance of whitelistGroup. The routes that change the whitelist require
// basic auth with the admin credentials and refuse every request when the credentials are not set
func NewWhitelistGroup(facadeHandler interface{}, admin config.WhitelistAdminConfig) (*whitelistGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(whitelistFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for whitelist group", errors.ErrFacadeWrongTypeAssertion)
	}

	wg := &whitelistGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	adminOnly := []gin.HandlerFunc{createAdminAuth(admin)}
	wg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    listWhitelistPath,
			Method:  http.MethodGet,
			Handler: wg.getWhitelist,
		},
		{
			Path:        addressPath,
			Method:      http.MethodPost,
			Handler:     wg.addAddress,
			Middlewares: adminOnly,
		},
		{
			Path:        addressPath,
			Method:      http.MethodDelete,
			Handler:     wg.removeAddress,
			Middlewares: adminOnly,
		},
	}

	return wg, nil
}

func createAdminAuth(admin config.WhitelistAdminConfig) gin.HandlerFunc {
	if len(admin.Username) == 0 || len(admin.Password) == 0 {
		log.Warn("whitelist admin credentials are not set, whitelist updates are refused")
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				shared.GenericAPIResponse{
					Data:  nil,
					Error: errors.ErrUnauthorized.Error(),
					Code:  shared.ReturnCodeUnauthorized,
				},
			)
		}
	}

	return gin.BasicAuth(gin.Accounts{admin.Username: admin.Password})
}

func (wg *whitelistGroup) getWhitelist(c *gin.Context) {
	addresses, err := wg.facade.GetWhitelist()
	if err != nil {
		respondWithError(c, fmt.Errorf("%s: %w", errors.ErrWhitelist.Error(), err), nil)
		return
	}

	respondWithSuccess(c, gin.H{addressesKey: addresses})
}

func (wg *whitelistGroup) addAddress(c *gin.Context) {
	wg.updateAddress(c, wg.facade.AddToWhitelist, true)
}

func (wg *whitelistGroup) removeAddress(c *gin.Context) {
	wg.updateAddress(c, wg.facade.RemoveFromWhitelist, false)
}

func (wg *whitelistGroup) updateAddress(c *gin.Context, update func(address string) error, whitelisted bool) {
	address := c.Param(addressParamName)
	if len(address) == 0 {
		respondWithValidationError(c, fmt.Errorf("%s: %w", errors.ErrValidation.Error(), errors.ErrValidationEmptyAddress))
		return
	}

	err := update(address)
	if err != nil {
		respondWithError(c, fmt.Errorf("%s: %w", errors.ErrWhitelist.Error(), err), nil)
		return
	}

	log.Info("whitelist updated", "address", address, "whitelisted", whitelisted)
	respondWithSuccess(c, gin.H{whitelistAddressKey: address, isWhitelistedKey: whitelisted})
}

// IsInterfaceNil returns true if there is no value under the interface
func (wg *whitelistGroup) IsInterfaceNil() bool {
	return wg == nil
}
