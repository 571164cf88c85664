package rpc

import (
	"net/http"
	"time"
)

const (
	DefaultNode         = "http://localhost:3000"
	DefaultAPIVersion   = 1
	DefaultProbeURL     = "https://www.google.com/"
	DefaultProbeTimeout = 2 * time.Second
	DefaultTimeout      = 60 * time.Second
)

// ClientConfig holds the settings of an XRP-API client. It is not modified
// once the client is built.
type ClientConfig struct {
	Node       string
	APIVersion int

	HTTPClient *http.Client

	ProbeURL              string
	ProbeTimeout          time.Duration
	SkipConnectivityCheck bool

	LegacyDestinationTagKey bool
}

type ConfigOpt func(c *ClientConfig)

// NewClientConfig creates a configuration for the XRP-API server at node.
// The node URL is kept verbatim.
func NewClientConfig(node string, opts ...ConfigOpt) *ClientConfig {
	cfg := &ClientConfig{
		Node:         node,
		APIVersion:   DefaultAPIVersion,
		HTTPClient:   &http.Client{Timeout: DefaultTimeout},
		ProbeURL:     DefaultProbeURL,
		ProbeTimeout: DefaultProbeTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func WithAPIVersion(version int) ConfigOpt {
	return func(c *ClientConfig) {
		c.APIVersion = version
	}
}

// WithTimeout sets the timeout of every XRP-API request
func WithTimeout(timeout time.Duration) ConfigOpt {
	return func(c *ClientConfig) {
		c.HTTPClient = &http.Client{Timeout: timeout}
	}
}

func WithHTTPClient(client *http.Client) ConfigOpt {
	return func(c *ClientConfig) {
		c.HTTPClient = client
	}
}

// WithProbe overrides the URL and timeout of the internet reachability check
func WithProbe(url string, timeout time.Duration) ConfigOpt {
	return func(c *ClientConfig) {
		c.ProbeURL = url
		c.ProbeTimeout = timeout
	}
}

// WithoutConnectivityCheck disables both the reachability probe and the initial ping
func WithoutConnectivityCheck() ConfigOpt {
	return func(c *ClientConfig) {
		c.SkipConnectivityCheck = true
	}
}

// WithLegacyDestinationTagKey makes payments send the destination tag as
// "desination_tag", the key understood by older XRP-API deployments
func WithLegacyDestinationTagKey() ConfigOpt {
	return func(c *ClientConfig) {
		c.LegacyDestinationTagKey = true
	}
}
