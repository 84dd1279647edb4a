package config

import (
	"time"

	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

// Config stores all the config options relevant to the greeter daemon.
type Config struct {
	General  General
	Greeting Greeting
	Log      Log
	Server   Server

	// ListenHTTPStrings contains the raw strings passed for listen-http.
	// The listeners themselves are created in appMain.
	ListenHTTPStrings MultiStringFlag
}

// General groups settings that can not be categorized under other heads.
type General struct {
	MetricsAddress string
	MaxConns       int
	StatusPath     string
	HTTP2          bool

	DisableCrossOriginRequests bool
	PropagateCorrelationID     bool

	ShowVersion bool
}

// Greeting groups settings of the greeting handler.
type Greeting struct {
	// DefaultName is substituted when a request carries no usable `name`
	// query parameter.
	DefaultName string
}

// Log groups settings related to configuring logging
type Log struct {
	Format  string
	Verbose bool
}

// Server groups settings related to configuring the HTTP listeners
type Server struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ListenKeepAlive   time.Duration
	ShutdownTimeout   time.Duration
}

func loadConfig() (*Config, error) {
	config := &Config{
		General: General{
			MetricsAddress:             *metricsAddress,
			MaxConns:                   *maxConns,
			StatusPath:                 *statusPath,
			HTTP2:                      *useHTTP2,
			DisableCrossOriginRequests: *disableCrossOriginRequests,
			PropagateCorrelationID:     *propagateCorrelationID,
			ShowVersion:                *showVersion,
		},
		Greeting: Greeting{
			DefaultName: *greetingName,
		},
		Log: Log{
			Format:  *logFormat,
			Verbose: *logVerbose,
		},
		Server: Server{
			ReadTimeout:       *serverReadTimeout,
			ReadHeaderTimeout: *serverReadHeaderTimeout,
			WriteTimeout:      *serverWriteTimeout,
			ListenKeepAlive:   *serverKeepAlive,
			ShutdownTimeout:   *serverShutdownTimeout,
		},

		ListenHTTPStrings: listenHTTP,
	}

	// The original example binds all interfaces when no listener is given
	if config.ListenHTTPStrings.Len() == 0 {
		config.ListenHTTPStrings.Set(defaultListenAddress)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LogConfig logs the loaded configuration at debug level
func LogConfig(config *Config) {
	log.WithFields(log.Fields{
		"default-config-filename":       flag.DefaultConfigFlagname,
		"disable-cross-origin-requests": config.General.DisableCrossOriginRequests,
		"greeting-name":                 config.Greeting.DefaultName,
		"listen-http":                   config.ListenHTTPStrings.String(),
		"log-format":                    config.Log.Format,
		"log-verbose":                   config.Log.Verbose,
		"max-conns":                     config.General.MaxConns,
		"metrics-address":               config.General.MetricsAddress,
		"propagate-correlation-id":      config.General.PropagateCorrelationID,
		"server-keep-alive":             config.Server.ListenKeepAlive,
		"server-read-timeout":           config.Server.ReadTimeout,
		"server-read-header-timeout":    config.Server.ReadHeaderTimeout,
		"server-shutdown-timeout":       config.Server.ShutdownTimeout,
		"server-write-timeout":          config.Server.WriteTimeout,
		"status-path":                   config.General.StatusPath,
		"use-http2":                     config.General.HTTP2,
	}).Debug("Start daemon with configuration")
}

// LoadConfig parses configuration settings passed as command line arguments
// or via config file, and populates a Config object with those values
func LoadConfig() (*Config, error) {
	initFlags()

	return loadConfig()
}
