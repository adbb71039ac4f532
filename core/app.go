package core

import (
	"log/slog"

	"github.com/canaryfilms/portal/auth"
	"github.com/canaryfilms/portal/cache"
	"github.com/canaryfilms/portal/config"
	"github.com/canaryfilms/portal/db"
	"github.com/canaryfilms/portal/router"
)

// App is the application wide context.
// db interfaces and permanent structs go here.
//
// For simplicity, all handlers and middleware have App as receiver.
type App struct {
	users          db.DbUsers
	portal         db.DbPortal
	pipeline       *auth.Pipeline
	sessions       *auth.SessionCodec
	oauth2States   cache.Cache[string, string]
	configProvider *config.Provider
	logger         *slog.Logger
	params         router.ParamReader
}

func (a *App) Users() db.DbUsers {
	return a.users
}

func (a *App) Portal() db.DbPortal {
	return a.portal
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) Config() *config.Config {
	return a.configProvider.Get()
}
