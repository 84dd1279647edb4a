package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"

	"gitlab.com/tachyons/greeter/internal/config"
	"gitlab.com/tachyons/greeter/internal/greeting"
	"gitlab.com/tachyons/greeter/internal/healthcheck"
	"gitlab.com/tachyons/greeter/internal/logging"
	"gitlab.com/tachyons/greeter/internal/netutil"
	"gitlab.com/tachyons/greeter/metrics"
)

var corsHandler = cors.New(cors.Options{AllowedMethods: []string{http.MethodGet, http.MethodHead}})

type theApp struct {
	config *config.Config
	state  *greeting.State
}

func newApp(cfg *config.Config) *theApp {
	return &theApp{
		config: cfg,
		state:  &greeting.State{},
	}
}

// buildHandler wires the greeting handler into the middleware chain. The
// innermost handler owns dispatch and state access; everything around it
// is boundary plumbing: status page, CORS, metrics, access logs and
// correlation ids.
func (a *theApp) buildHandler() (http.Handler, error) {
	var handler http.Handler = greeting.NewHandler(a.state, a.config.Greeting.DefaultName)

	if !a.config.General.DisableCrossOriginRequests {
		handler = corsHandler.Handler(handler)
	}

	if a.config.General.StatusPath != "" {
		handler = healthcheck.NewMiddleware(handler, a.config.General.StatusPath)
	}

	handler = promhttp.InstrumentHandlerCounter(metrics.RequestsTotal, handler)
	handler = promhttp.InstrumentHandlerInFlight(metrics.SessionsActive, handler)

	accessHandler, err := logging.BasicAccessLogger(handler, a.config.Log.Format)
	if err != nil {
		return nil, err
	}
	handler = accessHandler

	var correlationOpts []correlation.InboundHandlerOption
	if a.config.General.PropagateCorrelationID {
		correlationOpts = append(correlationOpts, correlation.WithPropagation())
	}

	return correlation.InjectCorrelationID(handler, correlationOpts...), nil
}

// Run starts one HTTP server per configured listen address, all sharing
// one handler and one state, plus the optional metrics listener. It blocks
// until a shutdown signal or the first listener failure, then drains the
// servers within the configured timeout.
func (a *theApp) Run() error {
	handler, err := a.buildHandler()
	if err != nil {
		return fmt.Errorf("building handler chain: %w", err)
	}

	var limiter *netutil.Limiter
	if a.config.General.MaxConns > 0 {
		limiter = netutil.NewLimiterWithMetrics(
			a.config.General.MaxConns,
			metrics.LimitListenerMaxConns,
			metrics.LimitListenerConcurrentConns,
			metrics.LimitListenerWaitingConns,
		)
	}

	addresses := a.config.ListenHTTPStrings.Split()

	var (
		wg      sync.WaitGroup
		servers []*http.Server
		errCh   = make(chan error, len(addresses)+1)
	)

	for _, addr := range addresses {
		server := a.newServer(handler)
		servers = append(servers, server)

		wg.Add(1)
		go func(addr string, server *http.Server) {
			defer wg.Done()

			log.WithFields(log.Fields{
				"listener": addr,
			}).Info("Set up HTTP listener")

			if err := a.listenAndServe(server, addr, limiter); err != nil && err != http.ErrServerClosed {
				errCh <- fmt.Errorf("listener %s: %w", addr, err)
			}
		}(addr, server)
	}

	if addr := a.config.General.MetricsAddress; addr != "" {
		server := &http.Server{Handler: promhttp.Handler()}
		servers = append(servers, server)

		wg.Add(1)
		go func() {
			defer wg.Done()

			log.WithFields(log.Fields{
				"listener": addr,
			}).Info("Set up metrics listener")

			if err := a.listenAndServe(server, addr, nil); err != nil && err != http.ErrServerClosed {
				errCh <- fmt.Errorf("metrics listener %s: %w", addr, err)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.WithFields(log.Fields{
			"signal": sig.String(),
		}).Info("Shutting down")
	case err = <-errCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	for _, server := range servers {
		if shutdownErr := server.Shutdown(ctx); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}

	wg.Wait()

	return err
}

func runApp(cfg *config.Config) error {
	return newApp(cfg).Run()
}
