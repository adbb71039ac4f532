package core

import (
	"fmt"
	"log/slog"

	"github.com/canaryfilms/portal/auth"
	"github.com/canaryfilms/portal/cache"
	"github.com/canaryfilms/portal/config"
	"github.com/canaryfilms/portal/db"
	"github.com/canaryfilms/portal/router"
)

type Option func(*App)

// WithDbUsers sets the user persistence interface
func WithDbUsers(u db.DbUsers) Option {
	return func(a *App) {
		a.users = u
	}
}

// WithDbPortal sets the portal read interface
func WithDbPortal(p db.DbPortal) Option {
	return func(a *App) {
		a.portal = p
	}
}

// WithPipeline sets the authentication pipeline
func WithPipeline(p *auth.Pipeline) Option {
	return func(a *App) {
		a.pipeline = p
	}
}

// WithSessionCodec sets the session codec
func WithSessionCodec(c *auth.SessionCodec) Option {
	return func(a *App) {
		a.sessions = c
	}
}

// WithOauth2StateCache sets the cache holding pending OAuth2 states
func WithOauth2StateCache(c cache.Cache[string, string]) Option {
	return func(a *App) {
		a.oauth2States = c
	}
}

// WithConfigProvider sets the application's configuration provider.
func WithConfigProvider(p *config.Provider) Option {
	return func(a *App) {
		a.configProvider = p
	}
}

// WithLogger sets the logger implementation
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithParamReader sets the path-parameter reader matching the active router.
func WithParamReader(p router.ParamReader) Option {
	return func(a *App) {
		a.params = p
	}
}

func NewApp(opts ...Option) (*App, error) {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}

	if a.users == nil {
		return nil, fmt.Errorf("users is required but was not provided (use WithDbUsers)")
	}
	if a.portal == nil {
		return nil, fmt.Errorf("portal is required but was not provided (use WithDbPortal)")
	}
	if a.pipeline == nil {
		return nil, fmt.Errorf("pipeline is required but was not provided (use WithPipeline)")
	}
	if a.sessions == nil {
		return nil, fmt.Errorf("session codec is required but was not provided (use WithSessionCodec)")
	}
	if a.oauth2States == nil {
		return nil, fmt.Errorf("oauth2 state cache is required but was not provided (use WithOauth2StateCache)")
	}
	if a.configProvider == nil {
		return nil, fmt.Errorf("config provider is required but was not provided (use WithConfigProvider)")
	}
	if a.logger == nil {
		return nil, fmt.Errorf("logger is required but was not provided (use WithLogger)")
	}
	if a.params == nil {
		return nil, fmt.Errorf("param reader is required but was not provided (use WithParamReader)")
	}

	return a, nil
}
