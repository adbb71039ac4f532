package core

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/canaryfilms/portal/auth"
	"github.com/canaryfilms/portal/config"
	"github.com/canaryfilms/portal/db"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Session.Secret = "test_secret_32_bytes_long_xxxxxx"
	cfg.Session.Duration = config.Duration{Duration: 24 * time.Hour}
	return cfg
}

// stubParams satisfies router.ParamReader with fixed values.
type stubParams map[string]string

func (s stubParams) Param(r *http.Request, name string) string {
	return s[name]
}

// mapCache is a plain map behind the cache interface; enough for tests that
// only need deterministic Get/Set/Del.
type mapCache struct {
	m map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{m: make(map[string]string)}
}

func (c *mapCache) Get(key string) (string, bool) {
	v, ok := c.m[key]
	return v, ok
}

func (c *mapCache) Set(key, value string, cost int64) bool {
	c.m[key] = value
	return true
}

func (c *mapCache) SetWithTTL(key, value string, cost int64, ttl time.Duration) bool {
	c.m[key] = value
	return true
}

func (c *mapCache) Del(key string) {
	delete(c.m, key)
}

func testApp(users db.DbUsers, portal db.DbPortal) *App {
	return &App{
		users:          users,
		portal:         portal,
		pipeline:       auth.NewPipeline(users, testLogger()),
		sessions:       auth.NewSessionCodec(users),
		oauth2States:   newMapCache(),
		configProvider: config.NewProvider(testConfig()),
		logger:         testLogger(),
		params:         stubParams{},
	}
}
