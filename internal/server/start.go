package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// shutdownTimeout bounds the graceful shutdown of connections and modules.
const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal arrives
// or the listener fails, then shuts everything down.
func (s *Server) Start() error {
	addr := s.Cfg.GetAddr()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var startErr error
	select {
	case <-waitForShutdown():
		slog.Info("Shutting down server")
	case startErr = <-errCh:
		slog.Error("Server stopped unexpectedly", "error", startErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Join(startErr, s.Shutdown(ctx))
}

// Shutdown stops accepting requests, waits for in-flight ones and stops
// the modules.
func (s *Server) Shutdown(ctx context.Context) error {
	httpErr := s.E.Shutdown(ctx)
	return errors.Join(httpErr, s.shutdownModules(ctx))
}
