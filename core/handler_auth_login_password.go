package core

import (
	"encoding/json"
	"net/http"
)

type passwordLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginWithPasswordHandler authenticates an email/password pair and issues
// the session cookie.
// Endpoint: POST /api/auth/login
// Authenticated: No
// Allowed Mimetype: application/json
func (a *App) LoginWithPasswordHandler(w http.ResponseWriter, r *http.Request) {
	if err, resp := a.ValidateContentType(r, MimeTypeJSON); err != nil {
		writeJsonError(w, resp)
		return
	}

	var req passwordLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJsonError(w, errorMissingFields)
		return
	}
	if err := ValidateEmail(req.Email); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	principal, err := a.pipeline.ResolveLocal(r.Context(), req.Email, req.Password)
	if err != nil {
		writeJsonError(w, responseForAuthError(err))
		return
	}

	if err := a.issueSession(w, *principal); err != nil {
		a.logger.Error("failed to issue session", "err", err)
		writeJsonError(w, errorTokenGeneration)
		return
	}
	writeAuthResponse(w, *principal)
}
