package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pyoushmadan10/chatify/internal/app"
	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/pyoushmadan10/chatify/internal/logging"
	"github.com/pyoushmadan10/chatify/internal/registry"
	"github.com/pyoushmadan10/chatify/internal/rendering"
	"github.com/pyoushmadan10/chatify/internal/server"
	"github.com/samber/do/v2"
)

func main() {
	logging.New() // Initialize the structured logger
	cfg := config.New()

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	container := app.NewContainer(connectCtx, cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		app.Shutdown(ctx, container)
	}()

	if err := run(container, cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(container *do.RootScope, cfg config.Provider) error {
	auth, err := app.Authenticator(container)
	if err != nil {
		return err
	}

	s, err := server.New(server.Dependencies{
		Config:        cfg,
		Renderer:      do.MustInvoke[*rendering.UniversalRenderer](container),
		Authenticator: auth,
	})
	if err != nil {
		return err
	}
	s.RegisterRoutes()

	modules, err := app.NewModules(container, cfg)
	if err != nil {
		return err
	}
	if err := s.InitModules(context.Background(), modules, registry.New(cfg)); err != nil {
		return err
	}

	return s.Start()
}
