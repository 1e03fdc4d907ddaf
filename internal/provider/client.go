// Package provider is the gateway's only path to the upstream advising API.
// All entity datasets are fetched through it and all writes pass through it;
// the gateway itself owns no advising data.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/campus-tools/advising-admin/pkg/config"
	appErrors "github.com/campus-tools/advising-admin/pkg/errors"
)

// TokenSource supplies the bearer credential attached to every upstream
// call. Injecting it here keeps credential lookup out of every call site.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource is a fixed service credential, typically from config.
type StaticTokenSource string

// Token returns the static credential.
func (s StaticTokenSource) Token(context.Context) (string, error) {
	return string(s), nil
}

// Observer receives upstream call timings. Implemented by the metrics
// service; nil disables instrumentation.
type Observer interface {
	ObserveUpstreamRequest(method, path string, status int, duration time.Duration)
}

// envelope is the upstream response contract.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client performs authenticated HTTP calls against the advising API. A
// circuit breaker fails calls fast after repeated upstream outages; there
// is deliberately no retry, the caller surfaces the failure to the
// operator.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
	obs     Observer
}

// NewClient constructs an upstream client from configuration.
func NewClient(cfg config.UpstreamConfig, tokens TokenSource, logger *zap.Logger, obs Observer) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	var breaker *gobreaker.CircuitBreaker
	if cfg.BreakerEnabled {
		trips := uint32(cfg.BreakerTrips)
		if trips == 0 {
			trips = 5
		}
		breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "advising-api",
			Timeout: cfg.BreakerCooloff,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= trips
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("upstream breaker state change",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()))
			},
		})
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: cfg.RequestTimeout},
		tokens:  tokens,
		breaker: breaker,
		logger:  logger,
		obs:     obs,
	}
}

// do executes one upstream request and decodes the data payload into out
// (when non-nil). 4xx responses map to typed errors without tripping the
// breaker; transport failures and 5xx responses count as upstream outages.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode upstream payload")
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.roundTrip(ctx, method, path, query, body, contentType, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "resolve upstream credential")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	status, raw, err := c.execute(req)
	if c.obs != nil {
		c.obs.ObserveUpstreamRequest(method, path, status, time.Since(start))
	}
	if err != nil {
		c.logger.Warn("upstream call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return err
	}

	if out != nil {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstreamRejected.Code, appErrors.ErrUpstreamRejected.Status, "malformed upstream response")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstreamRejected.Code, appErrors.ErrUpstreamRejected.Status, "malformed upstream payload")
		}
	}
	return nil
}

// execute performs the round trip, optionally inside the breaker.
func (c *Client) execute(req *http.Request) (int, []byte, error) {
	type result struct {
		status int
		body   []byte
	}

	attempt := func() (interface{}, error) {
		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "advising API unreachable")
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "read upstream response")
		}
		if resp.StatusCode >= 500 {
			return nil, appErrors.Wrap(
				fmt.Errorf("upstream status %d", resp.StatusCode),
				appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "advising API error")
		}
		return result{status: resp.StatusCode, body: raw}, nil
	}

	var (
		res interface{}
		err error
	)
	if c.breaker != nil {
		res, err = c.breaker.Execute(attempt)
	} else {
		res, err = attempt()
	}
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return 0, nil, appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "advising API circuit open")
		}
		return 0, nil, err
	}

	r := res.(result)
	if r.status >= 400 {
		return r.status, nil, c.statusError(r.status, r.body)
	}
	return r.status, r.body, nil
}

func (c *Client) statusError(status int, raw []byte) error {
	message := ""
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil {
		message = env.Error.Message
	}

	switch status {
	case http.StatusNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, message)
	case http.StatusConflict:
		return appErrors.Clone(appErrors.ErrConflict, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return appErrors.Clone(appErrors.ErrUpstreamRejected, "advising API rejected gateway credential")
	default:
		return appErrors.Clone(appErrors.ErrUpstreamRejected, message)
	}
}
