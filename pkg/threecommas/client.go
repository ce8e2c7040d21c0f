// Package threecommas provides a signed client for the 3Commas REST API.
//
// Every request is signed with HMAC-SHA256 over the request path followed by
// the canonical query string, and carries the APIKEY and Signature headers.
// Request bodies are never part of the signature.
package threecommas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the production 3Commas API host.
	DefaultBaseURL = "https://api.3commas.io"

	// DefaultTimeout bounds every request made with the default HTTP client.
	DefaultTimeout = 30 * time.Second

	// HeaderAPIKey carries the account API key.
	HeaderAPIKey = "APIKEY"

	// HeaderSignature carries the hex HMAC signature.
	HeaderSignature = "Signature"

	tracerName = "github.com/donaldgifford/threecommas/pkg/threecommas"
)

// Credentials is the API key pair issued by 3Commas.
type Credentials struct {
	APIKey    string
	APISecret string
}

// HTTPDoer is the transport used to dispatch requests. *http.Client
// satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a signed 3Commas API client. It is immutable after New returns
// and safe for concurrent use.
type Client struct {
	apiKey     string
	signer     *Signer
	baseURL    string
	httpClient HTTPDoer
	logger     *slog.Logger
	tracer     trace.Tracer
	encodings  map[Family]BodyEncoding

	Accounts    *AccountsService
	Bots        *BotsService
	Deals       *DealsService
	GridBots    *GridBotsService
	Marketplace *MarketplaceService
	Users       *UsersService
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default API host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client, which has a 30 second
// timeout.
func WithHTTPClient(hc HTTPDoer) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for per-request debug lines. Parameters,
// bodies and credentials are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// WithBodyEncoding overrides the body encoding of one endpoint family.
func WithBodyEncoding(f Family, enc BodyEncoding) Option {
	return func(c *Client) {
		c.encodings[f] = enc
	}
}

// New creates a Client for the given credentials.
func New(creds Credentials, opts ...Option) (*Client, error) {
	if creds.APIKey == "" || creds.APISecret == "" {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		apiKey:     creds.APIKey,
		signer:     NewSigner(creds.APISecret),
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
		tracer:     otel.Tracer(tracerName),
		encodings:  defaultEncodings(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Accounts = &AccountsService{c.service(FamilyAccounts)}
	c.Bots = &BotsService{c.service(FamilyBots)}
	c.Deals = &DealsService{c.service(FamilyDeals)}
	c.GridBots = &GridBotsService{c.service(FamilyGridBots)}
	c.Marketplace = &MarketplaceService{c.service(FamilyMarketplace)}
	c.Users = &UsersService{c.service(FamilyUsers)}

	return c, nil
}

// BaseURL returns the API host requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one API call relative to a path prefix.
type Request struct {
	Method string // defaults to GET
	Path   string // suffix appended to the service prefix
	Query  Params
	Body   Body
}

// Do dispatches req with an empty path prefix, so req.Path must be the full
// path (e.g. "/public/api/ver1/deals"). The JSON response is decoded into dst
// when dst is non-nil and the body is non-empty.
func (c *Client) Do(ctx context.Context, req Request, dst any) error {
	return c.dispatch(ctx, "custom", "", req, dst)
}

// BuildRequest assembles the signed *http.Request for req under prefix
// without sending it.
func (c *Client) BuildRequest(
	ctx context.Context,
	prefix string,
	req Request,
) (*http.Request, error) {
	query, err := req.Query.Encode()
	if err != nil {
		return nil, err
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	fullPath := prefix + req.Path
	signature := c.signer.Sign(fullPath, query)

	u := c.baseURL + fullPath
	if query != "" {
		u += "?" + query
	}

	var (
		body        io.Reader = http.NoBody
		contentType string
	)
	if req.Body != nil {
		ct, payload, err := req.Body.Encode()
		if err != nil {
			return nil, err
		}
		contentType = ct
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set(HeaderAPIKey, c.apiKey)
	httpReq.Header.Set(HeaderSignature, signature)
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	return httpReq, nil
}

func (c *Client) dispatch(
	ctx context.Context,
	service, prefix string,
	req Request,
	dst any,
) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	fullPath := prefix + req.Path

	ctx, span := c.tracer.Start(ctx, "3commas "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", fullPath),
			attribute.String("threecommas.service", service),
		),
	)
	defer span.End()

	httpReq, err := c.BuildRequest(ctx, prefix, req)
	if err != nil {
		EncodingFailuresTotal.Inc()
		recordSpanError(span, err)
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		TransportFailuresTotal.WithLabelValues(method, service).Inc()
		c.logger.DebugContext(ctx, "3commas request failed",
			"method", method,
			"path", fullPath,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		terr := &TransportError{Method: method, Path: fullPath, Err: err}
		recordSpanError(span, terr)
		return terr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		TransportFailuresTotal.WithLabelValues(method, service).Inc()
		terr := &TransportError{
			Method: method,
			Path:   fullPath,
			Err:    fmt.Errorf("reading response body: %w", err),
		}
		recordSpanError(span, terr)
		return terr
	}

	elapsed := time.Since(start)
	status := strconv.Itoa(resp.StatusCode)
	RequestsTotal.WithLabelValues(method, service, status).Inc()
	RequestDuration.WithLabelValues(method, service).Observe(elapsed.Seconds())
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	c.logger.DebugContext(ctx, "3commas request",
		"method", method,
		"path", fullPath,
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Method:     method,
			Path:       fullPath,
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
		recordSpanError(span, apiErr)
		return apiErr
	}

	if dst == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, dst); err != nil {
		err = fmt.Errorf("decoding %s %s response: %w", method, fullPath, err)
		recordSpanError(span, err)
		return err
	}
	return nil
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
