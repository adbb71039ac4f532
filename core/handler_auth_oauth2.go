package core

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/canaryfilms/portal/auth"
	"github.com/canaryfilms/portal/config"
	"github.com/canaryfilms/portal/crypto"
)

// oauth2TokenExchangeTimeout bounds the code-for-token exchange so an
// unresponsive provider cannot hang a callback.
const oauth2TokenExchangeTimeout = 10 * time.Second

// oauth2StateTTL is how long a pending authorization may take before its
// state expires from the cache.
const oauth2StateTTL = 10 * time.Minute

func oauth2ConfigFor(p config.OAuth2Provider) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		RedirectURL:  p.RedirectURL,
		Scopes:       p.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  p.AuthURL,
			TokenURL: p.TokenURL,
		},
	}
}

// startOAuth2 generates a state, remembers which provider it belongs to and
// redirects the browser to the provider's authorization page.
func (a *App) startOAuth2(w http.ResponseWriter, r *http.Request, name string, p config.OAuth2Provider) {
	if !p.Enabled() {
		writeJsonError(w, errorInvalidOAuth2Provider)
		return
	}

	state := crypto.Oauth2State()
	a.oauth2States.SetWithTTL(state, name, 1, oauth2StateTTL)

	url := oauth2ConfigFor(p).AuthCodeURL(state)
	http.Redirect(w, r, url, http.StatusFound)
}

// exchangeOAuth2Code validates state and code from the callback query and
// exchanges the code for a token. The state is single-use: it is deleted
// before the exchange regardless of outcome.
func (a *App) exchangeOAuth2Code(r *http.Request, name string, p config.OAuth2Provider) (*oauth2.Token, jsonResponse) {
	if !p.Enabled() {
		return nil, errorInvalidOAuth2Provider
	}

	q := r.URL.Query()
	state := q.Get("state")
	code := q.Get("code")
	if state == "" || code == "" {
		return nil, errorMissingFields
	}

	owner, ok := a.oauth2States.Get(state)
	if !ok || owner != name {
		return nil, errorOAuth2StateMismatch
	}
	a.oauth2States.Del(state)

	ctx, cancel := context.WithTimeout(r.Context(), oauth2TokenExchangeTimeout)
	defer cancel()

	token, err := oauth2ConfigFor(p).Exchange(ctx, code)
	if err != nil {
		a.logger.Info("oauth2 token exchange failed", "provider", name, "err", err)
		return nil, errorOAuth2TokenExchangeFailed
	}
	return token, jsonResponse{}
}

// LoginWithHackclubHandler starts the hackclub authorization-code flow.
// Endpoint: GET /auth/hackclub
// Authenticated: No
func (a *App) LoginWithHackclubHandler(w http.ResponseWriter, r *http.Request) {
	a.startOAuth2(w, r, "hackclub", a.Config().Hackclub)
}

// HackclubCallbackHandler finishes the hackclub flow. The pipeline fetches
// the profile with the exchanged access token.
// Endpoint: GET /auth/hackclub/callback
// Authenticated: No
func (a *App) HackclubCallbackHandler(w http.ResponseWriter, r *http.Request) {
	token, resp := a.exchangeOAuth2Code(r, "hackclub", a.Config().Hackclub)
	if token == nil {
		writeJsonError(w, resp)
		return
	}

	principal, err := a.pipeline.ResolveHackclub(r.Context(), token.AccessToken)
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

// LoginWithGoogleHandler starts the google authorization-code flow.
// Endpoint: GET /auth/google
// Authenticated: No
func (a *App) LoginWithGoogleHandler(w http.ResponseWriter, r *http.Request) {
	a.startOAuth2(w, r, "google", a.Config().Google)
}

// GoogleCallbackHandler finishes the google flow: exchanges the code,
// fetches the userinfo document and hands the structured profile to the
// pipeline.
// Endpoint: GET /auth/google/callback
// Authenticated: No
func (a *App) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	cfg := a.Config().Google
	token, resp := a.exchangeOAuth2Code(r, "google", cfg)
	if token == nil {
		writeJsonError(w, resp)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), oauth2TokenExchangeTimeout)
	defer cancel()

	client := oauth2ConfigFor(cfg).Client(ctx, token)
	userInfoResp, err := client.Get(cfg.UserInfoURL)
	if err != nil {
		a.logger.Info("google userinfo fetch failed", "err", err)
		writeJsonError(w, errorOAuth2UserInfoFailed)
		return
	}
	defer userInfoResp.Body.Close()

	if userInfoResp.StatusCode != http.StatusOK {
		a.logger.Info("google userinfo fetch failed", "status", userInfoResp.StatusCode)
		writeJsonError(w, errorOAuth2UserInfoFailed)
		return
	}

	var info struct {
		Sub   string `json:"sub"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(userInfoResp.Body).Decode(&info); err != nil || info.Sub == "" {
		writeJsonError(w, errorOAuth2UserInfoFailed)
		return
	}

	profile := auth.GoogleProfile{ID: info.Sub, Name: info.Name}
	if info.Email != "" {
		profile.Emails = []string{info.Email}
	}

	principal, err := a.pipeline.ResolveGoogle(r.Context(), profile)
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
