package core

import (
	"net/http"
)

// MeHandler returns the current principal.
// Endpoint: GET /api/me
// Authenticated: Yes
func (a *App) MeHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeJsonError(w, errorNoSession)
		return
	}
	response := JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkPrincipal,
			Message: "Current principal",
		},
		Data: AuthData{Record: *p},
	}
	writeJsonWithData(w, response)
}

// LogoutHandler clears the session cookie. Idempotent: logging out without
// a session is still a success.
// Endpoint: POST /api/auth/logout
// Authenticated: No
func (a *App) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	a.clearSession(w)
	writeJsonOk(w, okLoggedOut)
}
