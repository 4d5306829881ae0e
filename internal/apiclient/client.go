// Package apiclient implements the HTTP client of the remote hospital records API.
//
// Idempotent requests are retried on connection errors, 429 and 5xx responses.
// POST, PATCH and DELETE are sent once.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	"github.com/allisson/mediport/internal/metrics"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

const (
	// HeaderRequestID carries the gateway request id to the remote API.
	HeaderRequestID = "X-Request-Id"

	maxResponseBytes = 4 << 20
)

// Config holds the remote API client settings.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client calls the remote records API on behalf of an authenticated operator.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	metrics    metrics.RemoteMetrics
	logger     *slog.Logger
}

type noRetryKey struct{}

// New creates a Client. The base URL must be absolute.
func New(cfg Config, remoteMetrics metrics.RemoteMetrics, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote api base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid remote api base url: %q is not absolute", cfg.BaseURL)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	httpClient := retryablehttp.NewClient()
	httpClient.HTTPClient.Timeout = cfg.Timeout
	httpClient.RetryMax = cfg.RetryMax
	httpClient.RetryWaitMin = cfg.RetryWaitMin
	httpClient.RetryWaitMax = cfg.RetryWaitMax
	httpClient.CheckRetry = retryPolicy
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	httpClient.Logger = logger

	if remoteMetrics == nil {
		remoteMetrics = metrics.NewNoOpRemoteMetrics()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		metrics:    remoteMetrics,
		logger:     logger,
	}, nil
}

// retryPolicy disables retries for requests flagged as non-idempotent.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if noRetry, _ := ctx.Value(noRetryKey{}).(bool); noRetry {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodOptions:
		return true
	default:
		return false
	}
}

// do sends one logical request. endpoint is the path template used as metrics label.
// A nil credential sends no Authorization header.
func (c *Client) do(
	ctx context.Context,
	credential *sessionDomain.Credential,
	method, endpoint, path string,
	in, out any,
) error {
	var body any
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, endpoint, err)
		}
		body = data
	}

	reqCtx := ctx
	if !isIdempotent(method) {
		reqCtx = context.WithValue(ctx, noRetryKey{}, true)
	}

	req, err := retryablehttp.NewRequestWithContext(reqCtx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, endpoint, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != nil {
		req.Header.Set("Authorization", credential.AuthorizationHeader())
	}
	if requestID, ok := httputil.GetRequestID(ctx); ok {
		req.Header.Set(HeaderRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	c.metrics.RecordRequest(ctx, method, endpoint, statusCode, time.Since(start))

	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, endpoint, ctxErr)
		}
		c.logger.Warn("remote api request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Any("error", err),
		)
		return errors.Wrapf(errors.ErrUnavailable, "%s %s", method, endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrapf(errors.ErrUnavailable, "failed to read %s %s response", method, endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorForStatus(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(errors.ErrUnavailable, "malformed %s %s response", method, endpoint)
	}
	return nil
}
