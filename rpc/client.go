package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xrpl-commons/xrpapi-go/types"
	"go.uber.org/zap"
)

// Client wraps the XRP-API HTTP endpoints
type Client struct {
	config     ClientConfig
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new XRP-API client. Unless the connectivity check is
// disabled it first probes internet reachability, then pings the server; a
// failure of either is returned as a *ConnectivityError and no client is built.
func NewClient(ctx context.Context, cfg *ClientConfig, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		cfg = NewClientConfig(DefaultNode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	client := &Client{
		config:     *cfg,
		baseURL:    fmt.Sprintf("%s/v%d", cfg.Node, cfg.APIVersion),
		httpClient: httpClient,
		logger:     logger,
	}

	if cfg.SkipConnectivityCheck {
		return client, nil
	}

	if err := client.checkConnectivity(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) checkConnectivity(ctx context.Context) error {
	if err := c.probeInternet(ctx); err != nil {
		c.logger.Warn("internet reachability probe failed",
			zap.String("probe_url", c.config.ProbeURL),
			zap.Error(err))
		return newNoInternetError()
	}

	resp, err := c.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	if resp.IsError() {
		c.logger.Warn("XRP-API server ping failed",
			zap.String("node", c.config.Node),
			zap.String("error", resp.Error()))
		return newServerNotRunningError(resp.Error())
	}

	return nil
}

func (c *Client) probeInternet(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.ProbeURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create probe request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("probe request failed: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return nil
}

// Config returns a copy of the client configuration
func (c *Client) Config() ClientConfig {
	return c.config
}

// URL returns the absolute URL of an endpoint
func (c *Client) URL(endpoint ...string) string {
	return c.baseURL + "/" + strings.Join(endpoint, "/")
}

// Call performs exactly one request against {node}/v{version}/{endpoint...}
// and normalizes the answer into an envelope. Transport and decoding
// failures are reported in the envelope; the only returned error is
// ErrInvalidMethod, raised before any network activity.
func (c *Client) Call(ctx context.Context, method types.Method, endpoint []string, payload any, headers map[string]string) (*types.Response, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	url := c.URL(endpoint...)
	startTime := time.Now()
	defer func() {
		c.logger.Debug("XRP-API call completed",
			zap.String("method", method.String()),
			zap.String("url", url),
			zap.Duration("duration", time.Since(startTime)))
	}()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return types.NewErrorResponse(fmt.Sprintf("failed to encode payload: %s", err)), nil
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method.String(), url, body)
	if err != nil {
		return types.NewErrorResponse(fmt.Sprintf("failed to create request: %s", err)), nil
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.NewErrorResponse(err.Error()), nil
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Debug("failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.NewErrorResponse(fmt.Sprintf("failed to read response: %s", err)), nil
	}

	return decodeResponse(resp.StatusCode, raw), nil
}

func decodeResponse(statusCode int, raw []byte) *types.Response {
	status := types.StatusError
	if statusCode >= 200 && statusCode < 300 {
		status = types.StatusOK
	}

	if len(raw) == 0 {
		return types.NewNoContentResponse()
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return types.NewErrorResponse(types.JSONDecodeError)
	}

	fields, ok := decoded.(map[string]any)
	if !ok {
		fields = map[string]any{"data": decoded}
	}

	return types.NewResponse(status, fields)
}
