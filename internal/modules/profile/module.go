package profile

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pyoushmadan10/chatify/internal/filereader"
	"github.com/pyoushmadan10/chatify/internal/middleware"
	"github.com/pyoushmadan10/chatify/internal/module"
	profilesvc "github.com/pyoushmadan10/chatify/internal/profile"
	"github.com/pyoushmadan10/chatify/internal/pubsub"
	"github.com/pyoushmadan10/chatify/internal/registry"
)

// ViewsKey exposes the open profile screens to other modules.
const ViewsKey registry.Key[*Views] = "profile.views"

type Dependencies struct {
	Service    *profilesvc.Service
	Subscriber pubsub.Subscriber
	Reader     *filereader.Reader
	ViewTTL    time.Duration
	// UploadRate is the number of uploads allowed per client per minute.
	UploadRate float64
}

type Module struct {
	module.BaseModule
	deps    Dependencies
	views   *Views
	handler *Handler
	cancel  context.CancelFunc
	done    chan struct{}
}

func New(deps Dependencies) *Module {
	return &Module{
		deps:  deps,
		views: NewViews(deps.ViewTTL),
	}
}

func (m *Module) Name() string {
	return "profile"
}

func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, ViewsKey, m.views)
	return nil
}

// Boot mounts the routes under group and starts the background workers.
func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	m.handler = NewHandler(m.views, m.deps.Service, m.deps.Reader)

	group.GET("", m.handler.Get)
	group.POST("/avatar", m.handler.UploadAvatar, middleware.RateLimiter(m.deps.UploadRate))
	group.GET("/avatars/:user/:name", m.handler.Avatar)

	runCtx, cancel := context.WithCancel(context.Background())

	if m.deps.Subscriber != nil {
		err := pubsub.Subscribe(runCtx, m.deps.Subscriber, profilesvc.ProfileUpdated, func(ctx context.Context, u profilesvc.Updated) error {
			n := m.views.ApplyProfilePic(u.UserID, u.ProfilePic)
			slog.Debug("profile update applied to open screens", "user_id", u.UserID, "screens", n)
			return nil
		})
		if err != nil {
			cancel()
			return err
		}
	}

	m.cancel = cancel
	m.done = make(chan struct{})
	go m.sweep(runCtx)
	return nil
}

func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	select {
	case <-m.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// sweep drops idle screens until ctx is canceled.
func (m *Module) sweep(ctx context.Context) {
	defer close(m.done)
	interval := m.deps.ViewTTL / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.views.Sweep(); n > 0 {
				slog.Debug("expired profile screens removed", "count", n)
			}
		}
	}
}
