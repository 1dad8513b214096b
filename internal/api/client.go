// Package api provides the client for the symptom catalog and prediction services.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	apierrors "github.com/diogo/symptrack/internal/errors"
	"github.com/diogo/symptrack/internal/models"
)

// maxErrorBody caps how much of an unexpected body ends up in an error message
const maxErrorBody = 200

// ServiceClient is what the chat controller and CLI need from the services
type ServiceClient interface {
	FetchSymptoms(ctx context.Context) (models.Catalog, error)
	Predict(ctx context.Context, text string) (*models.PredictResult, error)
	BaseURL() string
	Close()
}

// Client talks to the symptom catalog and prediction services over HTTP
type Client struct {
	httpClient tls_client.HttpClient
	baseURL    string
	legacy     bool
	timeout    time.Duration
	logger     *zap.Logger
	catalog    singleflight.Group
}

// Ensure Client implements ServiceClient
var _ ServiceClient = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient injects the HTTP client, mainly for tests
func WithHTTPClient(hc tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every request
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLegacyEndpoints switches to the /symptoms and /predict routes
func WithLegacyEndpoints(enabled bool) ClientOption {
	return func(c *Client) {
		c.legacy = enabled
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the services rooted at baseURL
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	client := &Client{
		baseURL: baseURL,
		timeout: 30 * time.Second,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// BaseURL returns the service root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) symptomsPath() string {
	if c.legacy {
		return models.PathLegacySymptoms
	}
	return models.PathSymptoms
}

func (c *Client) predictPath() string {
	if c.legacy {
		return models.PathLegacyPredict
	}
	return models.PathPredict
}

// FetchSymptoms loads the symptom catalog, sorted lexicographically.
// Concurrent calls share one request.
func (c *Client) FetchSymptoms(ctx context.Context) (models.Catalog, error) {
	v, err, shared := c.catalog.Do("catalog", func() (interface{}, error) {
		return c.fetchSymptoms(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("catalog request shared")
	}

	// Callers may keep and reorder their copy
	catalog := v.(models.Catalog)
	out := make(models.Catalog, len(catalog))
	copy(out, catalog)
	return out, nil
}

func (c *Client) fetchSymptoms(ctx context.Context) (models.Catalog, error) {
	path := c.symptomsPath()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(ctx, req, path)
	if err != nil {
		return nil, err
	}

	tokens, err := parseSymptomsResponse(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info("symptom catalog loaded", zap.Int("count", len(tokens)), zap.String("path", path))
	return models.NewCatalog(tokens), nil
}

// Predict posts the raw user text to the prediction service.
// A server-reported {"error": ...} in a 2xx reply is a result, not an error.
func (c *Client) Predict(ctx context.Context, text string) (*models.PredictResult, error) {
	path := c.predictPath()

	payload, err := encodePredictRequest(text)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("prediction requested", zap.Int("chars", len(text)))

	body, err := c.do(ctx, req, path)
	if err != nil {
		return nil, err
	}

	result, err := parsePredictResponse(body)
	if err != nil {
		return nil, err
	}

	if result.IsError() {
		c.logger.Info("prediction rejected by server", zap.String("error", result.Error))
	} else {
		c.logger.Info("prediction received",
			zap.String("disease", result.Prediction.Disease),
			zap.Float64("confidence", result.Prediction.Confidence))
	}
	return result, nil
}

// do executes a request and returns the body of a 2xx reply
func (c *Client) do(ctx context.Context, req *http.Request, path string) ([]byte, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkError(path, fmt.Errorf("failed to read body: %w", err))
	}

	c.logger.Debug("request completed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierrors.NewAPIError(resp.StatusCode, path, errorMessageFromBody(body))
	}

	return body, nil
}

type timeoutError interface {
	Timeout() bool
}

func classifyTransportError(ctx context.Context, path string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apierrors.NewTimeoutError(path)
	}
	var te timeoutError
	if errors.As(err, &te) && te.Timeout() {
		return apierrors.NewTimeoutError(path)
	}
	return apierrors.NewNetworkError(path, err)
}
