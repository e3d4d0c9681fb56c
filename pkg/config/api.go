package config

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	defaultPort = "8000"
	apiPath     = "/SimulationControlApi/v1"
	wsPath      = "/SimulationControlApi/ws/v1"
)

// APIConfiguration is how the frontend reaches the simulation control API. Durations are in
// milliseconds.
type APIConfiguration struct {
	HTTPBaseURL         string `json:"httpBaseUrl"`
	WSBaseURL           string `json:"wsBaseUrl"`
	Timeout             int    `json:"timeout,omitempty"`
	RetryAttempts       int    `json:"retryAttempts,omitempty"`
	RetryDelay          int    `json:"retryDelay,omitempty"`
	WSReconnectAttempts int    `json:"wsReconnectAttempts,omitempty"`
	WSReconnectDelay    int    `json:"wsReconnectDelay,omitempty"`
	WSHeartbeatInterval int    `json:"wsHeartbeatInterval,omitempty"`
}

// APIPatch carries the fields to change on an APIConfiguration; nil fields are left alone
type APIPatch struct {
	HTTPBaseURL         *string `json:"httpBaseUrl,omitempty"`
	WSBaseURL           *string `json:"wsBaseUrl,omitempty"`
	Timeout             *int    `json:"timeout,omitempty"`
	RetryAttempts       *int    `json:"retryAttempts,omitempty"`
	RetryDelay          *int    `json:"retryDelay,omitempty"`
	WSReconnectAttempts *int    `json:"wsReconnectAttempts,omitempty"`
	WSReconnectDelay    *int    `json:"wsReconnectDelay,omitempty"`
	WSHeartbeatInterval *int    `json:"wsHeartbeatInterval,omitempty"`
}

// DefaultAPIConfiguration points at a local API server
func DefaultAPIConfiguration() APIConfiguration {
	return APIConfiguration{
		HTTPBaseURL:         "http://localhost:" + defaultPort + apiPath,
		WSBaseURL:           "ws://localhost:" + defaultPort + wsPath,
		Timeout:             30000,
		RetryAttempts:       3,
		RetryDelay:          1000,
		WSReconnectAttempts: 5,
		WSReconnectDelay:    3000,
		WSHeartbeatInterval: 30000,
	}
}

// WithDefaults fills zero fields from the defaults
func (c APIConfiguration) WithDefaults() APIConfiguration {
	d := DefaultAPIConfiguration()
	if c.HTTPBaseURL == "" {
		c.HTTPBaseURL = d.HTTPBaseURL
	}
	if c.WSBaseURL == "" {
		c.WSBaseURL = d.WSBaseURL
	}
	fill := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&c.Timeout, d.Timeout)
	fill(&c.RetryAttempts, d.RetryAttempts)
	fill(&c.RetryDelay, d.RetryDelay)
	fill(&c.WSReconnectAttempts, d.WSReconnectAttempts)
	fill(&c.WSReconnectDelay, d.WSReconnectDelay)
	fill(&c.WSHeartbeatInterval, d.WSHeartbeatInterval)
	return c
}

// Apply returns c with the non-nil fields of p set
func (c APIConfiguration) Apply(p APIPatch) APIConfiguration {
	if p.HTTPBaseURL != nil {
		c.HTTPBaseURL = *p.HTTPBaseURL
	}
	if p.WSBaseURL != nil {
		c.WSBaseURL = *p.WSBaseURL
	}
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Timeout, p.Timeout)
	set(&c.RetryAttempts, p.RetryAttempts)
	set(&c.RetryDelay, p.RetryDelay)
	set(&c.WSReconnectAttempts, p.WSReconnectAttempts)
	set(&c.WSReconnectDelay, p.WSReconnectDelay)
	set(&c.WSHeartbeatInterval, p.WSHeartbeatInterval)
	return c
}

// Validate checks the URL schemes and the minimum timeout
func (c APIConfiguration) Validate() error {
	if !hasScheme(c.HTTPBaseURL, "http", "https") {
		return errors.New("invalid HTTP base URL")
	}
	if !hasScheme(c.WSBaseURL, "ws", "wss") {
		return errors.New("invalid WebSocket base URL")
	}
	if c.Timeout != 0 && c.Timeout < 1000 {
		return errors.New("timeout must be at least 1000ms")
	}
	return nil
}

func hasScheme(raw string, schemes ...string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return true
		}
	}
	return false
}

// NormalizeHTTPURL trims raw and defaults the scheme to http
func NormalizeHTTPURL(raw string) string {
	n := strings.TrimSpace(raw)
	if !strings.HasPrefix(n, "http://") && !strings.HasPrefix(n, "https://") {
		n = "http://" + n
	}
	return n
}

// NormalizeWSURL trims raw and defaults the scheme to ws
func NormalizeWSURL(raw string) string {
	n := strings.TrimSpace(raw)
	if !strings.HasPrefix(n, "ws://") && !strings.HasPrefix(n, "wss://") {
		n = "ws://" + n
	}
	return n
}

var schemePrefix = regexp.MustCompile(`^(http|https|ws|wss)://`)

// FromBaseAddress builds both base URLs from a host[:port] address, e.g. 192.168.1.100:8000
func FromBaseAddress(address string) (httpURL, wsURL string) {
	addr := schemePrefix.ReplaceAllString(strings.TrimSpace(address), "")
	if !strings.Contains(addr, ":") {
		addr = addr + ":" + defaultPort
	}
	return "http://" + addr + apiPath, "ws://" + addr + wsPath
}

// BaseAddress returns host:port of the HTTP base URL, or localhost:8000 when it cannot be parsed
func (c APIConfiguration) BaseAddress() string {
	u, err := url.Parse(c.HTTPBaseURL)
	if err != nil || u.Host == "" {
		return "localhost:" + defaultPort
	}
	return u.Host
}
