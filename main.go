package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"gitlab.com/tachyons/greeter/internal/config"
	"gitlab.com/tachyons/greeter/internal/logging"
	"gitlab.com/tachyons/greeter/metrics"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

func main() {
	log.SetOutput(os.Stderr)

	metrics.MustRegister()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	printVersion(cfg.General.ShowVersion, VERSION)

	if err := logging.ConfigureLogging(cfg.Log.Format, cfg.Log.Verbose); err != nil {
		log.WithError(err).Fatal("Failed to initialize logging")
	}

	log.WithFields(log.Fields{
		"version":  VERSION,
		"revision": REVISION,
	}).Print("Greeter Daemon")

	config.LogConfig(cfg)

	if err := runApp(cfg); err != nil {
		log.WithError(err).Fatal("Greeter daemon failed")
	}
}

func printVersion(showVersion bool, version string) {
	if showVersion {
		fmt.Fprintf(os.Stdout, "%s\n", version)
		os.Exit(0)
	}
}
