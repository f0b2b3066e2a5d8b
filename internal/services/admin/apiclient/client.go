package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/platform/id"
	"github.com/louisbranch/tableside/internal/platform/requestctx"
	"github.com/louisbranch/tableside/internal/platform/telemetry/metrics"
	"github.com/louisbranch/tableside/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is used when no API base URL is configured.
const DefaultBaseURL = "http://localhost:8000/api"

// RequestIDHeader carries the per-request correlation id upstream.
const RequestIDHeader = "X-Request-ID"

const tracerName = "github.com/louisbranch/tableside/internal/services/admin/apiclient"

// CredentialFunc returns the current bearer credential, or "" when signed out.
type CredentialFunc func() string

// Config selects the remote API and client behavior.
type Config struct {
	BaseURL string
	// Timeout caps each request; zero uses timeouts.APIRequest.
	Timeout time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	// Metrics records request counts and latency when set.
	Metrics *metrics.Registry
}

// Client calls the remote order API.
type Client struct {
	http       *resty.Client
	credential CredentialFunc
	metrics    *metrics.Registry
	tracer     trace.Tracer
}

// New builds a client. credential may be nil, in which case every request is
// sent unauthenticated.
func New(cfg Config, credential CredentialFunc) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("api base url must be http(s): %q", baseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.APIRequest
	}

	var httpClient *resty.Client
	if cfg.HTTPClient != nil {
		httpClient = resty.NewWithClient(cfg.HTTPClient)
	} else {
		httpClient = resty.New()
	}
	httpClient.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	if credential == nil {
		credential = func() string { return "" }
	}

	return &Client{
		http:       httpClient,
		credential: credential,
		metrics:    cfg.Metrics,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// operation names a remote call for spans, metrics and error mapping.
type operation struct {
	name string
	// login maps rejections to AUTHENTICATION_FAILED instead of SESSION_INVALID.
	login bool
}

var (
	opLogin        = operation{name: "auth.login", login: true}
	opCurrentUser  = operation{name: "auth.me"}
	opListOrders   = operation{name: "orders.list"}
	opUpdateOrder  = operation{name: "orders.update_status"}
	opAnalytics    = operation{name: "analytics.get"}
	opQRBatch      = operation{name: "qr.batch"}
	opQRGenerate   = operation{name: "qr.generate"}
	opFetchQRImage = operation{name: "qr.image"}
)

// call executes one envelope-returning request and decodes data into out.
func (c *Client) call(ctx context.Context, op operation, token, method, path string, configure func(*resty.Request), out any) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()
	ctx, span := c.tracer.Start(ctx, "api "+op.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer func() {
		c.finish(span, op, started, err)
	}()

	req := c.newRequest(ctx, token)
	if configure != nil {
		configure(req)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeNetwork, op.name+" request failed", err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))
	return decodeEnvelope(op, resp.StatusCode(), resp.Body(), out)
}

func (c *Client) newRequest(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	requestID := requestctx.RequestIDFromContext(ctx)
	if requestID == "" {
		if generated, err := id.NewID(); err == nil {
			requestID = generated
		}
	}
	if requestID != "" {
		req.SetHeader(RequestIDHeader, requestID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return req
}

func (c *Client) finish(span trace.Span, op operation, started time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = strings.ToLower(string(apperrors.CodeOf(err)))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	c.metrics.ObserveAPIRequest(op.name, outcome, time.Since(started))
	span.End()
}

// decodeEnvelope maps an HTTP status and body onto data or a domain error.
func decodeEnvelope(op operation, status int, body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if isAuthStatus(status) {
			return rejection(op, status, "")
		}
		return apperrors.Wrap(apperrors.CodeNetwork, fmt.Sprintf("%s: unexpected response (%d)", op.name, status), err)
	}

	if !env.Success || status >= http.StatusBadRequest {
		return rejection(op, status, strings.TrimSpace(env.Error.Message))
	}

	if out == nil {
		return nil
	}
	if !env.hasData() {
		return apperrors.New(apperrors.CodeRejected, op.name+": response has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperrors.Wrap(apperrors.CodeNetwork, op.name+": decode data", err)
	}
	return nil
}

func rejection(op operation, status int, message string) error {
	switch {
	case op.login:
		if message == "" {
			message = "Login failed"
		}
		return apperrors.WithMetadata(apperrors.CodeAuthentication, message, statusMetadata(status))
	case isAuthStatus(status):
		if message == "" {
			message = "session is no longer valid"
		}
		return apperrors.WithMetadata(apperrors.CodeSessionInvalid, message, statusMetadata(status))
	default:
		if message == "" {
			message = fmt.Sprintf("%s rejected (%d)", op.name, status)
		}
		return apperrors.WithMetadata(apperrors.CodeRejected, message, statusMetadata(status))
	}
}

func statusMetadata(status int) map[string]string {
	return map[string]string{"status": fmt.Sprint(status)}
}

func isAuthStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
