package config

import (
	"time"

	"github.com/namsral/flag"
)

const defaultListenAddress = "0.0.0.0:8080"

var (
	metricsAddress = flag.String("metrics-address", "", "The address to listen on for metrics requests")
	statusPath     = flag.String("status-path", "", "The url path for a status page, e.g., /@status; empty disables it")
	greetingName   = flag.String("greeting-name", "world", "The name substituted into the greeting when the request carries no 'name' parameter")

	logFormat  = flag.String("log-format", "json", "The log output format: 'text' or 'json'")
	logVerbose = flag.Bool("log-verbose", false, "Verbose logging")

	maxConns = flag.Int("max-conns", 0, "Limit on the number of concurrent connections to the HTTP listeners, 0 for no limit")
	useHTTP2 = flag.Bool("use-http2", true, "Enable HTTP2 support")

	propagateCorrelationID = flag.Bool("propagate-correlation-id", true, "Reuse existing Correlation-ID from the incoming request header `X-Request-ID` if present")

	// HTTP server timeouts
	serverReadTimeout       = flag.Duration("server-read-timeout", 5*time.Second, "ReadTimeout is the maximum duration for reading the entire request, including the body. A zero or negative value means there will be no timeout.")
	serverReadHeaderTimeout = flag.Duration("server-read-header-timeout", time.Second, "ReadHeaderTimeout is the amount of time allowed to read request headers. A zero or negative value means there will be no timeout.")
	serverWriteTimeout      = flag.Duration("server-write-timeout", 0, "WriteTimeout is the maximum duration before timing out writes of the response. A zero or negative value means there will be no timeout.")
	serverKeepAlive         = flag.Duration("server-keep-alive", 15*time.Second, "KeepAlive specifies the keep-alive period for network connections accepted by this listener. If zero, keep-alives are enabled if supported by the protocol and operating system. If negative, keep-alives are disabled.")
	serverShutdownTimeout   = flag.Duration("server-shutdown-timeout", 30*time.Second, "Server shutdown timeout (default: 30s)")

	disableCrossOriginRequests = flag.Bool("disable-cross-origin-requests", false, "Disable cross-origin requests")

	showVersion = flag.Bool("version", false, "Show version")

	// See initFlags()
	listenHTTP = MultiStringFlag{separator: ","}
)

// initFlags will be called from LoadConfig
func initFlags() {
	flag.Var(&listenHTTP, "listen-http", "The address(es) to listen on for HTTP requests")

	// read from -config=/path/to/greeter-config
	flag.String(flag.DefaultConfigFlagname, "", "path to config file")

	flag.Parse()
}
