package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/canaryfilms/portal/crypto"
	"github.com/canaryfilms/portal/db"
)

// providerResult is a strategy's raw outcome before the shared policy in
// the pipeline runs. needsLink marks the matched-by-email-fallback case
// where the provider id must be persisted before success is reported.
type providerResult struct {
	user       *db.User
	needsLink  bool
	provider   db.Provider
	externalID string
}

// strategy resolves raw credential material into a providerResult. Typed
// refusals come back as *Failure; anything else is an unexpected error the
// pipeline logs and generalizes.
type strategy interface {
	resolve(ctx context.Context) (*providerResult, error)
}

// localStrategy checks an email/password pair against the stored hash.
type localStrategy struct {
	users    db.DbUsers
	email    string
	password string
}

func (s *localStrategy) resolve(ctx context.Context) (*providerResult, error) {
	user, err := s.users.ByEmail(ctx, s.email)
	if err != nil {
		return nil, fmt.Errorf("lookup by email: %w", err)
	}
	if user == nil {
		return nil, failure(FailureAccountNotFound, "user not found")
	}
	// Approval is decided before any credential verdict: an unapproved
	// account answers the same way whether or not the password is right.
	if !user.IsApproved {
		return nil, failure(FailureNotApproved, "account not approved by admin")
	}
	if user.PasswordHash == "" {
		return nil, failure(FailureNoPasswordSet, "account has no password, use a provider login")
	}
	if !crypto.CheckPassword(s.password, user.PasswordHash) {
		return nil, failure(FailureInvalidCredential, "incorrect password")
	}
	return &providerResult{user: user, provider: db.ProviderLocal}, nil
}

// hackclubStrategy holds an access token from the authorization-code
// exchange and fetches the profile out of band to learn the stable
// external id.
type hackclubStrategy struct {
	users      db.DbUsers
	client     *http.Client
	profileURL string
	token      string
}

func (s *hackclubStrategy) resolve(ctx context.Context) (*providerResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, failure(FailureUpstreamOAuth, fmt.Sprintf("hackclub profile fetch failed: %v", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, failure(FailureUpstreamOAuth, fmt.Sprintf("hackclub profile fetch returned %d", resp.StatusCode))
	}

	var profile struct {
		ID json.Number `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, failure(FailureUpstreamOAuth, fmt.Sprintf("hackclub profile decode failed: %v", err))
	}
	if profile.ID.String() == "" {
		return nil, failure(FailureUpstreamOAuth, "hackclub profile has no id")
	}

	user, err := s.users.ByProvider(ctx, db.ProviderHackclub, profile.ID.String())
	if err != nil {
		return nil, fmt.Errorf("lookup by hackclub id: %w", err)
	}
	if user == nil {
		// Accounts are pre-provisioned by an admin; never auto-created here.
		return nil, failure(FailureAccountNotPreProvisioned, "account must be created by admin first")
	}
	return &providerResult{user: user, provider: db.ProviderHackclub, externalID: profile.ID.String()}, nil
}

// GoogleProfile is the structured profile delivered by the transport layer
// after the token exchange. Emails is ordered with the primary first.
type GoogleProfile struct {
	ID     string
	Name   string
	Emails []string
}

// googleStrategy matches first by linked google id, then falls back to the
// profile's primary email. A fallback match is flagged for linking.
type googleStrategy struct {
	users   db.DbUsers
	profile GoogleProfile
}

func (s *googleStrategy) resolve(ctx context.Context) (*providerResult, error) {
	user, err := s.users.ByProvider(ctx, db.ProviderGoogle, s.profile.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup by google id: %w", err)
	}
	if user != nil {
		return &providerResult{user: user, provider: db.ProviderGoogle, externalID: s.profile.ID}, nil
	}

	if len(s.profile.Emails) == 0 {
		return nil, failure(FailureUpstreamOAuth, "google profile has no email")
	}
	user, err = s.users.ByEmail(ctx, s.profile.Emails[0])
	if err != nil {
		return nil, fmt.Errorf("lookup by email: %w", err)
	}
	if user == nil {
		return nil, failure(FailureAccountNotPreProvisioned, "account must be created by admin first")
	}
	return &providerResult{
		user:       user,
		needsLink:  true,
		provider:   db.ProviderGoogle,
		externalID: s.profile.ID,
	}, nil
}
