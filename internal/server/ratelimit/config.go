package ratelimit

import (
	"net/http"
	"strings"
	"time"
)

// Rule is a per-endpoint limit. Path matching is exact unless the rule path
// ends with "/", which matches by prefix so "/weights/" covers
// "/weights/{name}".
type Rule struct {
	Path   string
	Method string
	Limit  int // requests per Window; <= 0 means unlimited
	Window time.Duration
	Burst  int // bucket capacity; defaults to Limit
}

// Config holds limiter settings.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// DefaultConfig returns the limits for this API. Analysis runs are the
// strictest tier because each one may invoke the LLM supplement; profile and
// feedback writes get a per-minute budget; reads fall through to the
// default. /health is exempt in match.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules: []Rule{
			{Path: "/analyze", Method: http.MethodPost, Limit: 60, Window: time.Hour, Burst: 10},
			{Path: "/weights/", Method: http.MethodPut, Limit: 100, Window: time.Minute, Burst: 10},
			{Path: "/feedback", Method: http.MethodPost, Limit: 100, Window: time.Minute, Burst: 10},
		},
	}
}

// match resolves the rule applying to a request. Exact path rules win over
// prefix rules; unmatched requests fall back to the config default. /health
// is never limited so monitoring cannot be throttled out.
func (c *Config) match(path, method string) Rule {
	if path == "/health" && method == http.MethodGet {
		return Rule{Path: path, Method: method}
	}

	for _, r := range c.Rules {
		if r.Method == method && r.Path == path {
			return r
		}
	}
	for _, r := range c.Rules {
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}

	return Rule{
		Path:   path,
		Method: method,
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
		Burst:  c.DefaultLimit,
	}
}
