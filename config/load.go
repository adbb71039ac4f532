package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Environment variables overriding file values. Secrets normally arrive
// this way; the TOML file can stay checked in without them.
const (
	EnvDatabaseURL          = "DATABASE_URL"
	EnvDatabasePath         = "DB_PATH"
	EnvSessionSecret        = "SESSION_SECRET"
	EnvAdminEmail           = "ADMIN_EMAIL"
	EnvAdminPassword        = "ADMIN_PASSWORD"
	EnvHackclubClientID     = "HACKCLUB_CLIENT_ID"
	EnvHackclubClientSecret = "HACKCLUB_CLIENT_SECRET"
	EnvHackclubCallbackURL  = "HACKCLUB_CALLBACK_URL"
	EnvGoogleClientID       = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret   = "GOOGLE_CLIENT_SECRET"
	EnvGoogleCallbackURL    = "GOOGLE_CALLBACK_URL"
)

// Load builds the runtime configuration: defaults, then the TOML file at
// path (skipped when path is empty), then environment overrides, then
// validation.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
		}
	}

	fillEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

func fillEnv(cfg *Config) {
	setFromEnv(&cfg.Database.URL, EnvDatabaseURL)
	setFromEnv(&cfg.Database.Path, EnvDatabasePath)
	setFromEnv(&cfg.Session.Secret, EnvSessionSecret)
	setFromEnv(&cfg.Admin.Email, EnvAdminEmail)
	setFromEnv(&cfg.Admin.Password, EnvAdminPassword)
	setFromEnv(&cfg.Hackclub.ClientID, EnvHackclubClientID)
	setFromEnv(&cfg.Hackclub.ClientSecret, EnvHackclubClientSecret)
	setFromEnv(&cfg.Hackclub.RedirectURL, EnvHackclubCallbackURL)
	setFromEnv(&cfg.Google.ClientID, EnvGoogleClientID)
	setFromEnv(&cfg.Google.ClientSecret, EnvGoogleClientSecret)
	setFromEnv(&cfg.Google.RedirectURL, EnvGoogleCallbackURL)
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}
