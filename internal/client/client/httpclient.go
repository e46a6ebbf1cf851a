package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/techblog/internal/common"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName   = "github.com/dmitrijs2005/techblog/internal/client/client"
	maxBodyBytes = 8 << 20
)

type tokenCtxKey struct{}

// WithToken makes requests issued with ctx carry token instead of the
// session's current one.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// HTTPClient talks JSON to the REST API rooted at baseURL.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer

	mu   sync.RWMutex
	auth Authenticator
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client with a fixed per-request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// SetAuthenticator wires the token source and the 401 handler. It is set
// after construction because the session manager itself needs the client.
func (c *HTTPClient) SetAuthenticator(a Authenticator) {
	c.mu.Lock()
	c.auth = a
	c.mu.Unlock()
}

func (c *HTTPClient) authenticator() Authenticator {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.auth
}

func (c *HTTPClient) token(ctx context.Context) string {
	if tok, ok := ctx.Value(tokenCtxKey{}).(string); ok {
		return tok
	}
	if a := c.authenticator(); a != nil {
		return a.Token()
	}
	return ""
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

type callOptions struct {
	skipUnauthorizedHook bool
	allowRejected        bool
}

type callOption func(*callOptions)

// exemptFromForcedLogout marks calls whose 401 is an ordinary answer
// (bad credentials, rejected token) rather than an expired session.
func exemptFromForcedLogout() callOption {
	return func(o *callOptions) { o.skipUnauthorizedHook = true }
}

// acceptRejection lets the caller read a success=false envelope itself
// instead of getting an error.
func acceptRejection() callOption {
	return func(o *callOptions) { o.allowRejected = true }
}

// rejecter is implemented by response envelopes that can carry
// success=false on a 2xx status.
type rejecter interface {
	Rejected() (message string, rejected bool)
}

// do sends one request and decodes a 2xx body into out. body is
// JSON-encoded unless it is a rawBody.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any, opts ...callOption) error {
	var co callOptions
	for _, o := range opts {
		o(&co)
	}

	ctx, span := c.tracer.Start(ctx, method+" "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	var reader io.Reader
	contentType := "application/json"
	switch b := body.(type) {
	case nil:
	case rawBody:
		reader = bytes.NewReader(b.data)
		contentType = b.contentType
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if tok := c.token(ctx); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}

	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
		attribute.String("request.id", requestID),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, data)
		span.SetStatus(codes.Error, apiErr.Error())
		if resp.StatusCode == http.StatusUnauthorized && !co.skipUnauthorizedHook {
			if a := c.authenticator(); a != nil {
				a.Unauthorized(ctx)
			}
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	if r, ok := out.(rejecter); ok && !co.allowRejected {
		if msg, rejected := r.Rejected(); rejected {
			apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(msg)}
			span.SetStatus(codes.Error, apiErr.Error())
			return apiErr
		}
	}
	return nil
}
