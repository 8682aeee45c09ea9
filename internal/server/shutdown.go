package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// waitForShutdown returns a channel closed on an interrupt or terminate signal.
func waitForShutdown() <-chan struct{} {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		<-quit
		signal.Stop(quit)
		close(done)
	}()
	return done
}

// Shutdown stops accepting requests, then stops the modules.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server")
	err := s.E.Shutdown(ctx)
	s.shutdownModules(ctx)
	return err
}
