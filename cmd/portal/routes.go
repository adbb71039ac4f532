package main

import (
	"net/http"

	"github.com/canaryfilms/portal/core"
	"github.com/canaryfilms/portal/router"
)

func route(app *core.App, rt router.Router) {
	member := func(h http.HandlerFunc) http.Handler {
		return router.Chain(h, app.WithSession, app.WithApproved)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return router.Chain(h, app.WithSession, app.WithAdmin)
	}

	// authentication
	rt.Register(http.MethodPost, "/api/auth/login", http.HandlerFunc(app.LoginWithPasswordHandler))
	rt.Register(http.MethodPost, "/api/auth/logout", http.HandlerFunc(app.LogoutHandler))
	rt.Register(http.MethodGet, "/auth/hackclub", http.HandlerFunc(app.LoginWithHackclubHandler))
	rt.Register(http.MethodGet, "/auth/hackclub/callback", http.HandlerFunc(app.HackclubCallbackHandler))
	rt.Register(http.MethodGet, "/auth/google", http.HandlerFunc(app.LoginWithGoogleHandler))
	rt.Register(http.MethodGet, "/auth/google/callback", http.HandlerFunc(app.GoogleCallbackHandler))
	rt.Register(http.MethodGet, "/api/me", router.Chain(http.HandlerFunc(app.MeHandler), app.WithSession))

	// member portal
	rt.Register(http.MethodGet, "/api/portal", member(app.PortalHomeHandler))
	rt.Register(http.MethodGet, "/api/schedules", member(app.SchedulesHandler))
	rt.Register(http.MethodGet, "/api/lines", member(app.LinesHandler))
	rt.Register(http.MethodGet, "/api/scripts", member(app.ScriptsHandler))
	rt.Register(http.MethodGet, "/api/scripts/:id", member(app.ScriptHandler))
	rt.Register(http.MethodGet, "/api/documents", member(app.DocumentsHandler))

	// admin
	rt.Register(http.MethodGet, "/api/admin/users", admin(app.AdminListUsersHandler))
	rt.Register(http.MethodPost, "/api/admin/users", admin(app.AdminCreateUserHandler))
	rt.Register(http.MethodPost, "/api/admin/users/:id/approve", admin(app.AdminApproveUserHandler))
	rt.Register(http.MethodPost, "/api/admin/users/:id/revoke", admin(app.AdminRevokeUserHandler))
	rt.Register(http.MethodDelete, "/api/admin/users/:id", admin(app.AdminDeleteUserHandler))
}
