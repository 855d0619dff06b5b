package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"pepe-order/models"

	"go.uber.org/zap"
)

const networkErrorMessage = "Network error, please check your connection and try again"

// APIClient talks to the Pepe ordering API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAPIClient builds a client for baseURL. resolve pins host names to fixed
// IP addresses; hosts not listed use the system resolver.
func NewAPIClient(baseURL string, timeout time.Duration, resolve map[string]string, logger *zap.Logger) *APIClient {
	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		if host, port, err := net.SplitHostPort(addr); err == nil {
			if ip, ok := resolve[host]; ok {
				addr = net.JoinHostPort(ip, port)
			}
		}
		return dialer.DialContext(ctx, network, addr)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
		logger:     logger,
	}
}

// do sends a JSON request and decodes the JSON answer into out. Transport
// failures come back as network errors, a 401 on an authenticated call as
// ErrLoginRequired and any other unusable answer as an application error.
func (c *APIClient) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return models.NewApplicationError("Failed to encode request", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return models.NewApplicationError("Failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return models.NewNetworkError(networkErrorMessage, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.NewNetworkError(networkErrorMessage, err)
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		return models.ErrLoginRequired
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var failure struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &failure) == nil && failure.Message != "" {
			return models.NewApplicationError(failure.Message, fmt.Errorf("status %d", resp.StatusCode))
		}
		return models.NewApplicationError(
			fmt.Sprintf("Request failed: %s", http.StatusText(resp.StatusCode)),
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(raw, 256)),
		)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return models.NewApplicationError("Unexpected response from server", err)
	}
	return nil
}

func truncate(raw []byte, n int) string {
	if len(raw) <= n {
		return string(raw)
	}
	return string(raw[:n]) + "..."
}
