package server

import (
	"context"
	"fmt"
	"log/slog"

	appmiddleware "github.com/pyoushmadan10/chatify/internal/middleware"
	"github.com/pyoushmadan10/chatify/internal/module"
	"github.com/pyoushmadan10/chatify/internal/registry"
)

// InitModules registers every module with reg, then boots each one under
// /app/<name> behind authentication.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	for _, m := range modules {
		group := s.E.Group("/app/"+m.Name(), appmiddleware.Auth(s.authenticator))
		if err := m.Boot(ctx, group, reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
		s.modules = append(s.modules, m)
	}
	return nil
}

// shutdownModules stops booted modules in reverse boot order.
func (s *Server) shutdownModules(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}
