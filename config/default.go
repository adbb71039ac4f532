package config

import (
	"time"

	"github.com/canaryfilms/portal/crypto"
)

// NewDefaultConfig creates a Config with sensible defaults. The session
// secret is randomly generated; deployments that want sessions to survive
// restarts must set their own.
func NewDefaultConfig() *Config {
	return &Config{
		BaseURL: "http://localhost:9811",
		Database: Database{
			Path: "data/portal.db",
		},
		Server: Server{
			Addr:                    ":9811",
			ReadTimeout:             Duration{Duration: 5 * time.Second},
			ReadHeaderTimeout:       Duration{Duration: 2 * time.Second},
			WriteTimeout:            Duration{Duration: 10 * time.Second},
			IdleTimeout:             Duration{Duration: 1 * time.Minute},
			ShutdownGracefulTimeout: Duration{Duration: 15 * time.Second},
		},
		Session: Session{
			Secret:   crypto.RandomString(32, crypto.AlphanumericAlphabet),
			Duration: Duration{Duration: 24 * time.Hour},
		},
		Admin: Admin{
			Email: "admin@canaryfilms.org",
		},
		Hackclub: OAuth2Provider{
			AuthURL:     "https://auth.hackclub.com/oauth/authorize",
			TokenURL:    "https://auth.hackclub.com/oauth/token",
			UserInfoURL: "https://auth.hackclub.com/api/v1/me",
		},
		Google: OAuth2Provider{
			AuthURL:     "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL:    "https://oauth2.googleapis.com/token",
			UserInfoURL: "https://www.googleapis.com/oauth2/v3/userinfo",
			Scopes:      []string{"openid", "profile", "email"},
		},
	}
}
