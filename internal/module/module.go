// Package module defines how features plug into the server.
package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/pyoushmadan10/chatify/internal/registry"
)

// Module is a feature mounted under /app/<Name()>.
//
// Startup runs Register on every module before any Boot, so a module may
// look up services other modules registered. Shutdown runs in reverse boot
// order.
type Module interface {
	Name() string
	Register(reg *registry.Registry) error
	// Boot adds routes to group and starts background work.
	Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error
	Shutdown(ctx context.Context) error
}

// BaseModule gives embedding modules no-op lifecycle hooks.
type BaseModule struct{}

func (BaseModule) Register(*registry.Registry) error { return nil }

func (BaseModule) Boot(context.Context, *echo.Group, *registry.Registry) error { return nil }

func (BaseModule) Shutdown(context.Context) error { return nil }
