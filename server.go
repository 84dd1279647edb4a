package main

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"

	"gitlab.com/tachyons/greeter/internal/netutil"
)

type keepAliveListener struct {
	net.Listener
	period time.Duration
}

type keepAliveSetter interface {
	SetKeepAlive(bool) error
	SetKeepAlivePeriod(time.Duration) error
}

func (ln *keepAliveListener) Accept() (net.Conn, error) {
	conn, err := ln.Listener.Accept()
	if err != nil {
		return nil, err
	}

	if kc, ok := conn.(keepAliveSetter); ok {
		if ln.period < 0 {
			kc.SetKeepAlive(false)
		} else if ln.period > 0 {
			kc.SetKeepAlive(true)
			kc.SetKeepAlivePeriod(ln.period)
		}
	}

	return conn, nil
}

func (a *theApp) newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       a.config.Server.ReadTimeout,
		ReadHeaderTimeout: a.config.Server.ReadHeaderTimeout,
		WriteTimeout:      a.config.Server.WriteTimeout,
	}
}

func (a *theApp) listenAndServe(server *http.Server, addr string, limiter *netutil.Limiter) error {
	if a.config.General.HTTP2 {
		if err := http2.ConfigureServer(server, &http2.Server{}); err != nil {
			return fmt.Errorf("configuring HTTP2 support: %w", err)
		}
	}

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	if limiter != nil {
		l = netutil.SharedLimitListener(l, limiter)
	}

	l = &keepAliveListener{Listener: l, period: a.config.Server.ListenKeepAlive}

	return server.Serve(l)
}
