// Package profile is the agents' client for the hub's profile REST API:
// consumer notification preferences and vendor delivery settings.
package profile

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

	"nearby/config"
	"nearby/internal/errors"

	"github.com/sony/gobreaker"
)

const (
	breakerOpenFor     = 30 * time.Second
	breakerMaxFailures = 5
	maxResponseBytes   = 1 << 20
)

// APIError is an error response returned by the profile API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("profile api %d %s: %s", e.Status, e.Code, e.Message)
}

// envelope mirrors the hub's response body.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client performs authenticated JSON calls against the profile API. Calls go
// through a circuit breaker so an unreachable service fails fast.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewClient creates a client for cfg.Preferences.BaseURL, authenticating with
// the transport token.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Preferences == nil || cfg.Preferences.BaseURL == "" {
		return nil, errors.New("preferences base url is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.Preferences.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse preferences base url")
	}

	token := ""
	if cfg.Transport != nil {
		token = cfg.Transport.Token
	}

	logger = logger.With(slog.String("component", "profile-client"))

	return &Client{
		baseURL: base,
		token:   token,
		http:    &http.Client{Timeout: cfg.Preferences.RequestTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "profile",
			Timeout: breakerOpenFor,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerMaxFailures
			},
			// Rejections by the service say nothing about its health.
			IsSuccessful: func(err error) bool {
				var apiErr *APIError
				return err == nil || (errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()))
			},
		}),
		logger: logger,
	}, nil
}

// do sends in as JSON and decodes the data member of the response into out.
// Either may be nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, method, path, in, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Wrapf(err, "%s %s", method, path)
	}

	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < http.StatusBadRequest {
			return errors.Wrap(err, "decode response")
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}

		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decode response data")
	}

	return nil
}
