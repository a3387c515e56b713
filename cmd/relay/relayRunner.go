package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	"github.com/multiversx/mx-chain-core-go/hashing/keccak"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	apiGin "github.com/multiversx/mx-chain-transfer-relay-go/api/gin"
	"github.com/multiversx/mx-chain-transfer-relay-go/api/shared"
	"github.com/multiversx/mx-chain-transfer-relay-go/config"
	"github.com/multiversx/mx-chain-transfer-relay-go/facade"
	"github.com/multiversx/mx-chain-transfer-relay-go/ledger"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	"github.com/multiversx/mx-chain-transfer-relay-go/process/batch"
	"github.com/multiversx/mx-chain-transfer-relay-go/process/builder"
	"github.com/multiversx/mx-chain-transfer-relay-go/process/confirmation"
	"github.com/multiversx/mx-chain-transfer-relay-go/process/nonce"
	"github.com/multiversx/mx-chain-transfer-relay-go/process/submitter"
	"github.com/multiversx/mx-chain-transfer-relay-go/process/usageFee"
	"github.com/multiversx/mx-chain-transfer-relay-go/statusHandler"
	"github.com/multiversx/mx-chain-transfer-relay-go/tokens"
	"github.com/multiversx/mx-chain-transfer-relay-go/wallet"
	"github.com/multiversx/mx-chain-transfer-relay-go/whitelist"
)

const addressLength = 32

type closer interface {
	Close() error
}

type webServerHandler interface {
	StartHttpServer() error
	Close() error
}

type relayComponents struct {
	facade    shared.FacadeHandler
	webServer webServerHandler
	closers   []closer
}

type relayRunner struct {
	flags *flagsConfig
	log   logger.Logger
}

func newRelayRunner(flags *flagsConfig, log logger.Logger) (*relayRunner, error) {
	if flags == nil {
		return nil, errNilFlagsConfig
	}

	return &relayRunner{
		flags: flags,
		log:   log,
	}, nil
}

func (rr *relayRunner) start() error {
	cfg, err := loadConfig(rr.flags.configurationFile)
	if err != nil {
		return err
	}
	rr.log.Info(fmt.Sprintf("initialized with config from: %s", rr.flags.configurationFile))

	applyFlags(cfg, rr.flags)

	err = rr.attachLogger(cfg.Logs)
	if err != nil {
		return err
	}

	components, err := createRelayComponents(cfg)
	if err != nil {
		return err
	}

	err = components.webServer.StartHttpServer()
	if err != nil {
		closeComponents(components, rr.log)
		return err
	}

	rr.log.Info("transfer relay started", "chain ID", cfg.General.ChainID, "gateway", cfg.Gateway.URL,
		"rest api interface", cfg.WebServer.Interface)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	rr.log.Info("terminating at user's signal...")
	closeComponents(components, rr.log)

	return nil
}

func loadConfig(configFile string) (*config.Config, error) {
	cfg := &config.Config{}
	err := core.LoadTomlFile(cfg, configFile)
	if err != nil {
		return nil, err
	}

	err = config.SanityCheck(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w in configuration file %s", err, configFile)
	}

	return cfg, nil
}

func applyFlags(cfg *config.Config, flags *flagsConfig) {
	if len(flags.restApiInterface) > 0 {
		cfg.WebServer.Interface = flags.restApiInterface
	}
	if flags.logLevelIsSet || len(cfg.Logs.LogLevel) == 0 {
		cfg.Logs.LogLevel = flags.logLevel
	}
	if len(flags.workingDir) > 0 && len(cfg.Whitelist.DBPath) > 0 && !filepath.IsAbs(cfg.Whitelist.DBPath) {
		cfg.Whitelist.DBPath = filepath.Join(flags.workingDir, cfg.Whitelist.DBPath)
	}
}

func (rr *relayRunner) attachLogger(cfg config.LogsConfig) error {
	err := logger.SetLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	if !rr.flags.disableAnsiColor {
		return nil
	}

	err = logger.RemoveLogObserver(os.Stdout)
	if err != nil {
		return err
	}

	return logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
}

func createRelayComponents(cfg *config.Config) (*relayComponents, error) {
	converter, err := pubkeyConverter.NewBech32PubkeyConverter(addressLength, cfg.General.AddressHrp)
	if err != nil {
		return nil, err
	}

	marshaller := &marshal.JsonMarshalizer{}
	metrics := statusHandler.NewPrometheusMetricsHandler()
	realClock := clock.New()

	gateway, err := ledger.NewGatewayClient(ledger.ArgsGatewayClient{
		URL:                  cfg.Gateway.URL,
		RequestTimeout:       time.Duration(cfg.Gateway.RequestTimeoutInSec) * time.Second,
		MaxRequestsPerSecond: cfg.Gateway.MaxRequestsPerSecond,
		Burst:                cfg.Gateway.Burst,
		PubkeyConverter:      converter,
		Marshaller:           marshaller,
	})
	if err != nil {
		return nil, err
	}

	decimalsProvider, err := tokens.NewDecimalsProvider(tokens.ArgsDecimalsProvider{
		ApiURL:         cfg.Tokens.ApiURL,
		RequestTimeout: time.Duration(cfg.Tokens.RequestTimeoutInSec) * time.Second,
		CacheSize:      cfg.Tokens.DecimalsCacheSize,
		TTL:            time.Duration(cfg.Tokens.DecimalsTTLInSec) * time.Second,
		Marshaller:     marshaller,
	})
	if err != nil {
		return nil, err
	}

	wallets, err := wallet.NewRegistry(wallet.ArgsRegistry{
		PemFiles:        cfg.Wallets.PemFiles,
		PubkeyConverter: converter,
		Marshaller:      marshaller,
		Hasher:          keccak.NewKeccak(),
	})
	if err != nil {
		return nil, err
	}

	whitelistHandler, err := whitelist.NewWhitelist(whitelist.ArgsWhitelist{
		DBPath:          cfg.Whitelist.DBPath,
		Seed:            cfg.Whitelist.Addresses,
		PubkeyConverter: converter,
	})
	if err != nil {
		return nil, err
	}

	relayFacade, err := createFacade(cfg, facadeDependencies{
		ledger:    gateway,
		decimals:  decimalsProvider,
		wallets:   wallets,
		whitelist: whitelistHandler,
		metrics:   metrics,
		clock:     realClock,
		converter: converter,
	})
	if err != nil {
		_ = whitelistHandler.Close()
		return nil, err
	}

	webServer, err := apiGin.NewGinWebServerHandler(apiGin.ArgsNewWebServer{
		Facade:         relayFacade,
		MetricsHandler: metrics.Handler(),
		Config:         cfg.WebServer,
	})
	if err != nil {
		_ = whitelistHandler.Close()
		return nil, err
	}

	return &relayComponents{
		facade:    relayFacade,
		webServer: webServer,
		closers:   []closer{webServer, whitelistHandler},
	}, nil
}

type facadeDependencies struct {
	ledger    process.LedgerProvider
	decimals  process.DecimalsProvider
	wallets   process.SignerProvider
	whitelist facade.WhitelistHandler
	metrics   process.MetricsHandler
	clock     process.Clock
	converter core.PubkeyConverter
}

func createFacade(cfg *config.Config, deps facadeDependencies) (shared.FacadeHandler, error) {
	nonces, err := nonce.NewNonceSequencer(nonce.ArgsNonceSequencer{
		Ledger:  deps.ledger,
		Metrics: deps.metrics,
	})
	if err != nil {
		return nil, err
	}

	transferBuilder, err := builder.NewTransferBuilder(builder.ArgsTransferBuilder{
		PubkeyConverter:  deps.converter,
		DecimalsProvider: deps.decimals,
		Config:           cfg.General,
	})
	if err != nil {
		return nil, err
	}

	txSubmitter, err := submitter.NewSubmitter(submitter.ArgsSubmitter{
		Ledger:  deps.ledger,
		Metrics: deps.metrics,
	})
	if err != nil {
		return nil, err
	}

	poller, err := confirmation.NewConfirmationPoller(confirmation.ArgsConfirmationPoller{
		Ledger:     deps.ledger,
		Clock:      deps.clock,
		Metrics:    deps.metrics,
		MaxRetries: cfg.Confirmation.MaxRetries,
		Interval:   time.Duration(cfg.Confirmation.IntervalInMillis) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	feeGate, err := usageFee.NewUsageFeeGate(usageFee.ArgsUsageFeeGate{
		Whitelist: deps.whitelist,
		Nonces:    nonces,
		Builder:   transferBuilder,
		Submitter: txSubmitter,
		Poller:    poller,
		Metrics:   deps.metrics,
		Config:    cfg.UsageFee,
	})
	if err != nil {
		return nil, err
	}

	scheduler, err := batch.NewBatchScheduler(batch.ArgsBatchScheduler{
		Clock:      deps.clock,
		Metrics:    deps.metrics,
		GroupSize:  int(cfg.Batch.GroupSize),
		GroupDelay: time.Duration(cfg.Batch.GroupDelayInMillis) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	return facade.NewRelayFacade(facade.ArgsRelayFacade{
		Ledger:       deps.ledger,
		Signers:      deps.wallets,
		Nonces:       nonces,
		Builder:      transferBuilder,
		Submitter:    txSubmitter,
		Poller:       poller,
		UsageFee:     feeGate,
		Scheduler:    scheduler,
		Whitelist:    deps.whitelist,
		MaxBatchSize: int(cfg.Batch.MaxBatchSize),
	})
}

func closeComponents(components *relayComponents, log logger.Logger) {
	for _, c := range components.closers {
		err := c.Close()
		if err != nil {
			log.Warn("error closing component", "error", err)
		}
	}
}
