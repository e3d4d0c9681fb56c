package client

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"simcontrol/pkg/config"
	"simcontrol/pkg/store"
)

// StorageKey is the store key holding the API configuration
const StorageKey = "api_configuration"

// Client manages how the frontend reaches the simulation control API. The configuration lives in
// the shared store so that it survives restarts.
type Client struct {
	store *store.Store
	log   logger.Logger
}

// NewClient creates a Client backed by s
func NewClient(s *store.Store, log logger.Logger) *Client {
	return &Client{store: s, log: log}
}

// GetConfiguration returns the stored configuration merged over the defaults. The defaults are
// returned when nothing is stored or the stored value cannot be read.
func (c *Client) GetConfiguration() config.APIConfiguration {
	var stored config.APIConfiguration
	found, err := c.store.Get(StorageKey, &stored)
	if err != nil {
		c.log.Error(fmt.Sprintf("error loading api configuration: %v", err))
		return config.DefaultAPIConfiguration()
	}
	if !found {
		c.log.Debug("no api configuration found, using defaults")
		return config.DefaultAPIConfiguration()
	}
	return stored.WithDefaults()
}

// SaveConfiguration merges patch into the current configuration, validates and stores it, and
// returns the stored configuration
func (c *Client) SaveConfiguration(patch config.APIPatch) (config.APIConfiguration, error) {
	updated := c.GetConfiguration().Apply(patch)
	if err := updated.Validate(); err != nil {
		return config.APIConfiguration{}, err
	}
	if err := c.store.Set(StorageKey, updated); err != nil {
		return config.APIConfiguration{}, errors.Wrap(err, "saving api configuration")
	}
	c.log.Info(fmt.Sprintf("api configuration saved: %s %s", updated.HTTPBaseURL, updated.WSBaseURL))
	return updated, nil
}

// UpdateHTTPBaseURL sets only the HTTP base url, defaulting its scheme to http
func (c *Client) UpdateHTTPBaseURL(url string) (config.APIConfiguration, error) {
	normalized := config.NormalizeHTTPURL(url)
	return c.SaveConfiguration(config.APIPatch{HTTPBaseURL: &normalized})
}

// UpdateWSBaseURL sets only the WebSocket base url, defaulting its scheme to ws
func (c *Client) UpdateWSBaseURL(url string) (config.APIConfiguration, error) {
	normalized := config.NormalizeWSURL(url)
	return c.SaveConfiguration(config.APIPatch{WSBaseURL: &normalized})
}

// UpdateFromBaseAddress sets both urls from a host[:port] address
func (c *Client) UpdateFromBaseAddress(address string) (config.APIConfiguration, error) {
	httpURL, wsURL := config.FromBaseAddress(address)
	return c.SaveConfiguration(config.APIPatch{HTTPBaseURL: &httpURL, WSBaseURL: &wsURL})
}

// ResetToDefaults stores and returns the default configuration
func (c *Client) ResetToDefaults() (config.APIConfiguration, error) {
	d := config.DefaultAPIConfiguration()
	if err := c.store.Set(StorageKey, d); err != nil {
		return config.APIConfiguration{}, errors.Wrap(err, "resetting api configuration")
	}
	c.log.Info("api configuration reset to defaults")
	return d, nil
}

// GetBaseAddress returns host:port of the configured HTTP base url
func (c *Client) GetBaseAddress() string {
	return c.GetConfiguration().BaseAddress()
}
