package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"ipecho/internal/config"
	"ipecho/internal/logger"
	"ipecho/internal/transport"
	"ipecho/internal/version"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type Bootstrap struct {
	Config     config.Config
	Logger     logger.Logger
	Handler    transport.Handler
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(config config.Config, log logger.Logger) *Bootstrap {
	return &Bootstrap{
		Config:     config,
		Logger:     log,
		Handler:    transport.NewHandler(log),
		ErrChan:    make(chan error, 5),
		SignalChan: make(chan os.Signal, 1),
	}
}

func serveTCP(tcpServer transport.Transport, ln net.Listener, errChan chan<- error) {
	if err := tcpServer.Serve(ln); err != nil {
		errChan <- fmt.Errorf("error when serving tcp server: %w", err)
	}
}

func newPprofServer(pprofPort string) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("localhost:%s", pprofPort),
		Handler:           http.DefaultServeMux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func startPprof(srv *http.Server, log logger.Logger, errChan chan<- error) {
	log.Infow("starting pprof server", "url", fmt.Sprintf("http://%s/debug/pprof/", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- fmt.Errorf("pprof server error: %w", err)
	}
}

func (b *Bootstrap) Run() error {
	b.Logger.Infow("starting ipecho", version.Fields()...)

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	tcpServer := transport.NewTCPServer(b.Config.Port(), b.Handler, b.Logger)
	ln, err := tcpServer.Listen()
	if err != nil {
		return fmt.Errorf("failed to bind port %s: %w", b.Config.Port(), err)
	}
	defer func(ln net.Listener) {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			b.Logger.Errorw("failed to close listener", "error", err)
		}
	}(ln)

	go serveTCP(tcpServer, ln, b.ErrChan)

	if b.Config.PprofEnabled() {
		pprofServer := newPprofServer(b.Config.PprofPort())
		defer func(srv *http.Server) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				b.Logger.Errorw("failed to stop pprof server", "error", err)
			}
		}(pprofServer)
		go startPprof(pprofServer, b.Logger, b.ErrChan)
	}

	b.Logger.Infow("all services started successfully")

	select {
	case err = <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		b.Logger.Infow("received signal, shutting down", "signal", sig.String())
		return nil
	}
}
