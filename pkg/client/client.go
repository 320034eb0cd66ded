// Package client implements FlameConnect's Client: the async HTTPS
// request orchestrator that talks to the fireplace gateway (spec.md
// §4.4). It owns no domain state of its own; every call is a single
// request (or, for TurnOn/TurnOff, a read followed by a write) built on
// pkg/codec for the wire format and pkg/auth for the bearer token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/logging"
	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/tracing"
	"github.com/deviantintegral/flameconnect/pkg/auth"
	"github.com/deviantintegral/flameconnect/pkg/constants"
	"github.com/deviantintegral/flameconnect/pkg/models"
)

var tracer = otel.Tracer("flameconnect/client")

// Client is FlameConnect's request orchestrator (spec.md §4.4). Four
// public operations: ListFires, GetFireOverview, WriteParameters, and the
// composed TurnOn/TurnOff.
type Client struct {
	baseURL    string
	auth       auth.TokenSupplier
	httpClient *http.Client
	ownsPool   bool
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides constants.APIBaseURL, e.g. to point at a
// self-hosted gateway mirror during integration tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPPool supplies an HttpPool (spec.md §4.4.1) the Client does not
// own: the caller is responsible for closing it, and Close is a no-op on
// this Client. Without this option the Client creates its own pool and
// Close releases it.
func WithHTTPPool(pool *http.Client) Option {
	return func(c *Client) {
		c.httpClient = pool
		c.ownsPool = false
	}
}

// New constructs a Client backed by supplier for bearer tokens. If no
// WithHTTPPool option is given, the Client creates and owns an
// otelhttp-instrumented pool, released by Close — the scoped-acquisition
// idiom spec.md §4.4.1 calls for: callers that didn't supply a pool must
// call Close on every exit path.
func New(ctx context.Context, supplier auth.TokenSupplier, opts ...Option) *Client {
	c := &Client{
		baseURL: constants.APIBaseURL(ctx),
		auth:    supplier,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
		c.ownsPool = true
	}

	return c
}

// Close releases the Client's HTTP pool if it owns one. Safe to call on a
// Client constructed with WithHTTPPool, where it is a no-op.
func (c *Client) Close() {
	if !c.ownsPool {
		return
	}
	c.httpClient.CloseIdleConnections()
}

// doRequest implements the common request contract (spec.md §4.4.6):
// obtain a bearer token, apply DEFAULT_HEADERS plus Authorization and
// Content-Type, issue the verb, and translate the result into
// *models.ApiError or *models.NetworkError. body may be nil for GET
// requests. On success it returns the response body bytes for the caller
// to unmarshal.
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) (respBody []byte, err error) {
	ctx, span := tracer.Start(ctx, "http-request")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token, err := c.auth.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining bearer token: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	for key, value := range constants.DEFAULT_HEADERS {
		req.Header.Set(key, value)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	ctx = logging.WithRequestID(ctx, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Cause: err}
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.NetworkError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log := logging.GetLoggerFromContext(ctx)
		log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("gateway returned a non-2xx response")
		err = &models.ApiError{Status: resp.StatusCode, Message: string(respBody)}
		return nil, err
	}

	return respBody, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding gateway response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, in any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request body for %s: %w", path, err)
	}
	_, err = c.doRequest(ctx, http.MethodPost, path, body)
	return err
}
