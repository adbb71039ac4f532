package config

// Config is the whole portal configuration. It is loaded once at startup
// from defaults, an optional TOML file and environment variables, then
// handed around through a Provider; nothing reads the environment after
// startup.
type Config struct {
	BaseURL  string         `toml:"base_url"`
	Database Database       `toml:"database"`
	Server   Server         `toml:"server"`
	Session  Session        `toml:"session"`
	Admin    Admin          `toml:"admin"`
	Hackclub OAuth2Provider `toml:"hackclub"`
	Google   OAuth2Provider `toml:"google"`
}

// Database selects the engine. A non-empty URL selects postgres; otherwise
// the sqlite file at Path is used. The selection happens exactly once at
// startup and is never re-checked per call.
type Database struct {
	URL  string `toml:"url"`
	Path string `toml:"path"`
}

type Server struct {
	Addr                    string   `toml:"addr"`
	ReadTimeout             Duration `toml:"read_timeout"`
	ReadHeaderTimeout       Duration `toml:"read_header_timeout"`
	WriteTimeout            Duration `toml:"write_timeout"`
	IdleTimeout             Duration `toml:"idle_timeout"`
	ShutdownGracefulTimeout Duration `toml:"shutdown_graceful_timeout"`
}

// Session configures the cookie carrying the session id. An empty Secret is
// replaced by a random one at load time, which logs everyone out on
// restart.
type Session struct {
	Secret   string   `toml:"secret"`
	Duration Duration `toml:"duration"`
	Secure   bool     `toml:"secure"`
}

// Admin seeds the bootstrap account. An empty Password means one is
// generated and printed once at first run.
type Admin struct {
	Email    string `toml:"email"`
	Password string `toml:"password"`
}

type OAuth2Provider struct {
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	AuthURL      string   `toml:"auth_url"`
	TokenURL     string   `toml:"token_url"`
	UserInfoURL  string   `toml:"user_info_url"`
	RedirectURL  string   `toml:"redirect_url"`
	Scopes       []string `toml:"scopes"`
}

// Enabled reports whether the provider can be offered: both client id and
// secret must be configured.
func (p OAuth2Provider) Enabled() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}
