package config

import "sync"

// Provider hands out the current configuration. Handlers read through it
// instead of holding a *Config so a future reload path has a single place
// to swap the value.
type Provider struct {
	mu  sync.RWMutex
	cfg *Config
}

func NewProvider(cfg *Config) *Provider {
	return &Provider{cfg: cfg}
}

func (p *Provider) Get() *Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

func (p *Provider) Update(cfg *Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg = cfg
}
