package main

import (
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

type flagsConfig struct {
	configurationFile string
	logLevel          string
	logLevelIsSet     bool
	disableAnsiColor  bool
	restApiInterface  string
	workingDir        string
}

var (
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `[path]` for the main configuration file. This TOML file contains the gateway, the gas, " +
			"the usage fee, the wallets and the REST api configurations.",
		Value: "./config/config.toml",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,process:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the process package which will receive a DEBUG" +
			" log level. When not set, the level from the configuration file is used.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// disableAnsiColor defines if the logger subsystem should prevent displaying ANSI colors
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system.",
	}
	// restApiInterface defines a flag for the interface on which the rest API will try to bind with
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"To bind to all available interfaces, set this flag to :8080. If set to `off` the REST api is disabled.",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the relay will store the whitelist database.",
		Value: "",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		logLevel,
		disableAnsiColor,
		restApiInterface,
		workingDirectory,
	}
}

func getFlagsConfig(ctx *cli.Context) *flagsConfig {
	return &flagsConfig{
		configurationFile: ctx.GlobalString(configurationFile.Name),
		logLevel:          ctx.GlobalString(logLevel.Name),
		logLevelIsSet:     ctx.IsSet(logLevel.Name),
		disableAnsiColor:  ctx.GlobalBool(disableAnsiColor.Name),
		restApiInterface:  ctx.GlobalString(restApiInterface.Name),
		workingDir:        ctx.GlobalString(workingDirectory.Name),
	}
}
