package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/canaryfilms/portal/db"
)

// profileFetchTimeout bounds the out-of-band profile fetch so an
// unresponsive provider cannot hang a login attempt.
const profileFetchTimeout = 10 * time.Second

// Pipeline applies the shared approval/linking/last-login policy after any
// strategy resolves. It is the single place deciding which failures surface
// to callers and which are logged and generalized.
type Pipeline struct {
	users              db.DbUsers
	logger             *slog.Logger
	client             *http.Client
	hackclubProfileURL string
}

type PipelineOption func(*Pipeline)

// WithHTTPClient overrides the client used for upstream profile fetches.
func WithHTTPClient(c *http.Client) PipelineOption {
	return func(p *Pipeline) {
		p.client = c
	}
}

// WithHackclubProfileURL overrides the profile endpoint. Used by tests and
// configurable deployments.
func WithHackclubProfileURL(url string) PipelineOption {
	return func(p *Pipeline) {
		p.hackclubProfileURL = url
	}
}

func NewPipeline(users db.DbUsers, logger *slog.Logger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		users:              users,
		logger:             logger,
		client:             &http.Client{Timeout: profileFetchTimeout},
		hackclubProfileURL: "https://auth.hackclub.com/api/v1/me",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ResolveLocal authenticates an email/password pair.
func (p *Pipeline) ResolveLocal(ctx context.Context, email, password string) (*Principal, error) {
	return p.run(ctx, db.ProviderLocal, &localStrategy{users: p.users, email: email, password: password})
}

// ResolveHackclub authenticates an access token obtained from the hackclub
// authorization-code exchange.
func (p *Pipeline) ResolveHackclub(ctx context.Context, accessToken string) (*Principal, error) {
	return p.run(ctx, db.ProviderHackclub, &hackclubStrategy{
		users:      p.users,
		client:     p.client,
		profileURL: p.hackclubProfileURL,
		token:      accessToken,
	})
}

// ResolveGoogle authenticates a structured profile delivered by the google
// token exchange.
func (p *Pipeline) ResolveGoogle(ctx context.Context, profile GoogleProfile) (*Principal, error) {
	return p.run(ctx, db.ProviderGoogle, &googleStrategy{users: p.users, profile: profile})
}

// run is the uniform policy. Order matters: approval is checked strictly
// before any write so a denied account leaves no trace of the attempt
// beyond the log line.
func (p *Pipeline) run(ctx context.Context, provider db.Provider, s strategy) (*Principal, error) {
	res, err := s.resolve(ctx)
	if err != nil {
		var f *Failure
		if errors.As(err, &f) {
			p.logger.Info("authentication refused",
				"provider", provider.String(),
				"kind", f.Kind.String())
			return nil, f
		}
		return nil, p.internal(provider, "strategy resolution", err)
	}

	user := res.user
	if !user.IsApproved {
		p.logger.Info("authentication refused",
			"provider", provider.String(),
			"kind", FailureNotApproved.String(),
			"user_id", user.ID)
		return nil, failure(FailureNotApproved, "account not approved by admin")
	}

	if res.needsLink {
		if err := p.users.LinkProvider(ctx, user.ID, res.provider, res.externalID); err != nil {
			return nil, p.internal(provider, "link provider", err)
		}
	}

	if err := p.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, p.internal(provider, "touch last login", err)
	}

	principal := principalFromUser(user)
	p.logger.Info("authentication succeeded",
		"provider", provider.String(),
		"user_id", user.ID)
	return &principal, nil
}

// internal logs the full error server-side and returns only a generic kind;
// raw detail never reaches the transport layer.
func (p *Pipeline) internal(provider db.Provider, op string, err error) *Failure {
	p.logger.Error("authentication error",
		"provider", provider.String(),
		"op", op,
		"err", err)
	if errors.Is(err, db.ErrDb) {
		return failure(FailureDb, "authentication temporarily unavailable")
	}
	return failure(FailureInternal, "authentication temporarily unavailable")
}
