package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// GreetingsServed counts the visitors greeted on the root route. It
	// mirrors the in-memory visit counter, which resets on restart while
	// this counter follows the usual prometheus lifecycle.
	GreetingsServed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "greeter_greetings_served_total",
		Help: "The total number of visitors greeted since daemon start",
	})

	// RequestsTotal counts served HTTP requests by status code and method
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "greeter_http_requests_total",
		Help: "Total number of HTTP requests served",
	},
		[]string{"code", "method"},
	)

	// SessionsActive is the number of requests currently being processed
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "greeter_http_sessions_active",
		Help: "The number of HTTP requests currently being processed",
	})

	// LimitListenerMaxConns is the configured connection limit
	LimitListenerMaxConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "greeter_limit_listener_max_conns",
		Help: "The maximum number of connections the limit listener allows",
	})

	// LimitListenerConcurrentConns counts the concurrent connections
	LimitListenerConcurrentConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "greeter_limit_listener_concurrent_conns",
		Help: "The number of concurrent connections to the limit listener",
	})

	// LimitListenerWaitingConns counts the connections waiting for a slot
	LimitListenerWaitingConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "greeter_limit_listener_waiting_conns",
		Help: "The number of connections waiting on the limit listener",
	})
)

// MustRegister registers all the collectors above with the default
// registry. Call it once from main.
func MustRegister() {
	prometheus.MustRegister(
		GreetingsServed,
		RequestsTotal,
		SessionsActive,
		LimitListenerMaxConns,
		LimitListenerConcurrentConns,
		LimitListenerWaitingConns,
	)
}
