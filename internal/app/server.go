package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	serverReadTimeout = 15 * time.Second
	// Provider calls can take up to the dispatch timeout plus persistence
	serverWriteTimeout = 90 * time.Second
	serverIdleTimeout  = 60 * time.Second
	shutdownTimeout    = 60 * time.Second
)

func createServer(addr string, handler *chi.Mux) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}
}

// runServer serves HTTP until ctx is done or the listener fails
func (a *App) runServer(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting HTTP server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown requested")
		return nil
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	}
}

// shutdown drains in-flight purchases first, then stops the reconciler and
// closes Redis, NATS and the pool in that order.
func (a *App) shutdown(stopWorkers context.CancelFunc) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown error", zap.Error(err))
	}

	stopWorkers()
	a.workerPool.Stop()
	a.logger.Info("reconciliation worker stopped")

	for _, closeFn := range a.closers {
		closeFn()
	}

	a.db.Close()
	a.logger.Info("shutdown complete")
	_ = a.logger.Sync()
}
