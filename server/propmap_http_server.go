package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"propmap-server/config"
)

type PropMapHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewPropMapHttpServer(router *Router, muxRouter *mux.Router, addr string) *PropMapHttpServer {
	return &PropMapHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Start serves HTTP until an interrupt or termination signal arrives, then
// drains in-flight requests before returning. A listener failure surfaces as
// the returned error instead of waiting for a signal.
func (s *PropMapHttpServer) Start() error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.muxRouter,
		ReadTimeout:  config.HTTP_READ_TIMEOUT_SECONDS * time.Second,
		WriteTimeout: config.HTTP_WRITE_TIMEOUT_SECONDS * time.Second,
		IdleTimeout:  config.HTTP_IDLE_TIMEOUT_SECONDS * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("[PropMapHttpServer] Listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	case sig := <-stop:
		log.Infof("[PropMapHttpServer] Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.HTTP_SHUTDOWN_TIMEOUT_SECONDS*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("drain in-flight requests: %w", err)
	}

	log.Infof("[PropMapHttpServer] Server exited cleanly")
	return nil
}
