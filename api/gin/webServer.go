package gin

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	apiErrors "github.com/multiversx/mx-chain-transfer-relay-go/api/errors"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/groups"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/middleware"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/shared"
	"github.com/multiversx/mx-chain-transfer-relay-go/config"
)

var log = logger.GetOrCreate("api/gin")

type resetHandler interface {
	Reset()
}

// ArgsNewWebServer holds the arguments needed to create a new instance of webServer
type ArgsNewWebServer struct {
	Facade         shared.FacadeHandler
	MetricsHandler http.Handler
	Config         config.WebServerConfig
}

type webServer struct {
	sync.RWMutex
	facade         shared.FacadeHandler
	metricsHandler http.Handler
	config         config.WebServerConfig
	httpServer     shared.HttpServerCloser
	groups         map[string]shared.GroupHandler
	cancelFunc     func()
}

// NewGinWebServerHandler returns a new instance of webServer
func NewGinWebServerHandler(args ArgsNewWebServer) (*webServer, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &webServer{
		facade:         args.Facade,
		metricsHandler: args.MetricsHandler,
		config:         args.Config,
	}, nil
}

func checkArgs(args ArgsNewWebServer) error {
	if check.IfNil(args.Facade) {
		return apiErrors.ErrNilFacadeHandler
	}
	if args.MetricsHandler == nil {
		return apiErrors.ErrNilMetricsHandler
	}

	return nil
}

// StartHttpServer will create a new instance of http.Server, populate it with all the routes and start it
func (ws *webServer) StartHttpServer() error {
	ws.Lock()
	defer ws.Unlock()

	if ws.config.Interface == config.WebServerOff {
		log.Debug("web server is turned off")
		return nil
	}

	engine, err := ws.createEngine()
	if err != nil {
		return err
	}

	server := &http.Server{Addr: ws.config.Interface, Handler: engine}
	log.Debug("creating gin web sever", "interface", ws.config.Interface)
	ws.httpServer, err = NewHttpServer(server)
	if err != nil {
		return err
	}

	log.Debug("starting web server",
		"SimultaneousRequests", ws.config.SimultaneousRequests,
		"SameSourceRequests", ws.config.SameSourceRequests,
		"SameSourceResetIntervalInSec", ws.config.SameSourceResetIntervalInSec,
	)

	go ws.httpServer.Start()

	return nil
}

func (ws *webServer) createEngine() (*gin.Engine, error) {
	if !ws.config.DebugMode {
		gin.DefaultWriter = &ginWriter{}
		gin.DefaultErrorWriter = &ginErrorWriter{}
		gin.DisableConsoleColor()
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(cors.Default())

	processors, err := ws.createMiddlewareLimiters()
	if err != nil {
		return nil, err
	}

	for _, proc := range processors {
		if check.IfNil(proc) {
			continue
		}

		engine.Use(proc.MiddlewareHandlerFunc())
	}

	err = ws.createGroups()
	if err != nil {
		return nil, err
	}

	ws.registerRoutes(engine)

	return engine, nil
}

func (ws *webServer) createGroups() error {
	groupsMap := make(map[string]shared.GroupHandler)
	transferGroup, err := groups.NewTransferGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["transfer"] = transferGroup

	whitelistGroup, err := groups.NewWhitelistGroup(ws.facade, ws.config.WhitelistAdmin)
	if err != nil {
		return err
	}
	groupsMap["whitelist"] = whitelistGroup

	metricsGroup, err := groups.NewMetricsGroup(ws.metricsHandler)
	if err != nil {
		return err
	}
	groupsMap["metrics"] = metricsGroup

	ws.groups = groupsMap

	return nil
}

func (ws *webServer) registerRoutes(ginRouter *gin.Engine) {
	for groupName, groupHandler := range ws.groups {
		log.Debug("registering gin API group", "group name", groupName)
		ginGroup := ginRouter.Group(fmt.Sprintf("/%s", groupName))
		groupHandler.RegisterRoutes(ginGroup, ws.config.ApiRoutes)
	}
}

func (ws *webServer) createMiddlewareLimiters() ([]shared.MiddlewareProcessor, error) {
	middlewares := make([]shared.MiddlewareProcessor, 0)

	bodyLimiter, err := middleware.NewBodySizeLimiter(ws.config.MaxRequestBodySizeInBytes)
	if err != nil {
		return nil, err
	}
	middlewares = append(middlewares, bodyLimiter)

	if ws.config.ApiRoutes.Logging.LoggingEnabled {
		threshold := time.Duration(ws.config.ApiRoutes.Logging.ThresholdInMicroSeconds) * time.Microsecond
		middlewares = append(middlewares, middleware.NewResponseLoggerMiddleware(threshold))
	}

	sourceLimiter, err := middleware.NewSourceThrottler(ws.config.SameSourceRequests)
	if err != nil {
		return nil, err
	}

	var ctx context.Context
	ctx, ws.cancelFunc = context.WithCancel(context.Background())

	go ws.sourceLimiterReset(ctx, sourceLimiter)

	middlewares = append(middlewares, sourceLimiter)

	globalLimiter, err := middleware.NewGlobalThrottler(ws.config.SimultaneousRequests)
	if err != nil {
		return nil, err
	}

	middlewares = append(middlewares, globalLimiter)

	return middlewares, nil
}

func (ws *webServer) sourceLimiterReset(ctx context.Context, reset resetHandler) {
	betweenResetDuration := time.Second * time.Duration(ws.config.SameSourceResetIntervalInSec)
	for {
		select {
		case <-time.After(betweenResetDuration):
			log.Trace("calling reset on WS source limiter")
			reset.Reset()
		case <-ctx.Done():
			log.Debug("closing webServer.sourceLimiterReset go routine")
			return
		}
	}
}

// Close will handle the closing of inner components
func (ws *webServer) Close() error {
	if ws.cancelFunc != nil {
		ws.cancelFunc()
	}

	ws.Lock()
	defer ws.Unlock()

	if check.IfNil(ws.httpServer) {
		return nil
	}

	err := ws.httpServer.Close()
	if err != nil {
		return fmt.Errorf("%w while closing the http server in gin/webServer", err)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
