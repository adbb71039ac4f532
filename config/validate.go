package config

import (
	"errors"
	"fmt"
)

const minSessionSecretLength = 32

// Validate checks the invariants the rest of the application relies on.
// It runs after every load so a bad file or environment fails at startup,
// not mid-request.
func Validate(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return errors.New("server addr cannot be empty")
	}
	if len(cfg.Session.Secret) < minSessionSecretLength {
		return fmt.Errorf("session secret must be at least %d characters", minSessionSecretLength)
	}
	if cfg.Session.Duration.Duration <= 0 {
		return errors.New("session duration must be positive")
	}
	if cfg.Database.URL == "" && cfg.Database.Path == "" {
		return errors.New("either database url or database path must be set")
	}
	if cfg.Admin.Email == "" {
		return errors.New("admin email cannot be empty")
	}
	for name, p := range map[string]OAuth2Provider{"hackclub": cfg.Hackclub, "google": cfg.Google} {
		if !p.Enabled() {
			continue
		}
		if p.AuthURL == "" || p.TokenURL == "" {
			return fmt.Errorf("%s provider is enabled but missing auth or token url", name)
		}
		if p.RedirectURL == "" {
			return fmt.Errorf("%s provider is enabled but missing redirect url", name)
		}
	}
	return nil
}
