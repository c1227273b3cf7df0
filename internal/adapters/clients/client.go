// Package clients provides HTTP client plumbing for downstream services.
package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jsamuelsen/motivation-page/internal/adapters/http/middleware"
	"github.com/jsamuelsen/motivation-page/internal/platform/logging"
)

const (
	// defaultTimeout is the request timeout if not configured.
	defaultTimeout = 10 * time.Second

	// transportMaxIdleConns is the maximum number of idle connections.
	transportMaxIdleConns = 10

	// transportIdleConnTimeout is the idle connection timeout.
	transportIdleConnTimeout = 90 * time.Second
)

// Config configures an HTTP client instance.
type Config struct {
	// BaseURL is the base URL for all requests (e.g., "https://api.nasa.gov").
	BaseURL string

	// ServiceName identifies the downstream service for logging.
	ServiceName string

	// Timeout bounds the whole request, connect through body read.
	Timeout time.Duration

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// Client is a thin HTTP client for downstream services.
// Every request is made exactly once; failures surface to the caller
// unretried, who decides whether to degrade or fail.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	logger      *slog.Logger
}

// New creates a new HTTP client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("downstream", cfg.ServiceName),
	)

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:    transportMaxIdleConns,
			IdleConnTimeout: transportIdleConnTimeout,
		},
	}

	return &Client{
		http:        httpClient,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceName: cfg.ServiceName,
		logger:      logger,
	}, nil
}

// Do executes an HTTP request with request ID propagation and logging.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	// Propagate request ID to the downstream service.
	if requestID := middleware.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}

	resp, err := c.http.Do(req.WithContext(ctx))
	duration := time.Since(startTime)

	if err != nil {
		logger.Warn("request failed",
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)
		return nil, err
	}

	logger.Debug("request completed",
		slog.Duration("duration", duration),
		slog.Int("status", resp.StatusCode),
	)

	return resp, nil
}

// Get issues a GET request against the base URL with query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")

	return c.Do(ctx, req)
}

// ServiceName returns the configured downstream service name.
func (c *Client) ServiceName() string {
	return c.serviceName
}

// buildURL constructs the full URL from base URL and path.
func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
