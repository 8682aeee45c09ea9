package app

import (
	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/pyoushmadan10/chatify/internal/filereader"
	"github.com/pyoushmadan10/chatify/internal/module"
	"github.com/pyoushmadan10/chatify/internal/modules/profile"
	"github.com/samber/do/v2"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(i do.Injector, cfg config.Provider) ([]module.Module, error) {
	deps, err := profileDeps(i, cfg)
	if err != nil {
		return nil, err
	}
	return []module.Module{
		profile.New(deps),
	}, nil
}

// profileDeps creates the dependency struct for the profile module.
func profileDeps(i do.Injector, cfg config.Provider) (profile.Dependencies, error) {
	svc, err := ProfileService(i)
	if err != nil {
		return profile.Dependencies{}, err
	}
	bus, err := Bus(i)
	if err != nil {
		return profile.Dependencies{}, err
	}
	reader, err := do.Invoke[*filereader.Reader](i)
	if err != nil {
		return profile.Dependencies{}, err
	}
	return profile.Dependencies{
		Service:    svc,
		Subscriber: bus,
		Reader:     reader,
		ViewTTL:    cfg.GetViewTTL(),
		UploadRate: cfg.GetUploadRateLimit(),
	}, nil
}
