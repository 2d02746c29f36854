package ordrin

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/KretovDmitry/ordrin-go/internal/application/errs"
	"github.com/KretovDmitry/ordrin-go/internal/application/interfaces"
	"github.com/KretovDmitry/ordrin-go/internal/config"
	"github.com/KretovDmitry/ordrin-go/internal/domain/entities/session"
	"github.com/KretovDmitry/ordrin-go/internal/metrics"
	"github.com/KretovDmitry/ordrin-go/pkg/limiter"
	"github.com/KretovDmitry/ordrin-go/pkg/logger"
	"github.com/KretovDmitry/ordrin-go/pkg/unzip"
	"github.com/google/uuid"
)

// Request headers understood by the API.
const (
	HeaderClientAuth = "X-NAAMA-CLIENT-AUTHENTICATED"
	HeaderUserAuth   = "X-NAAMA-AUTHENTICATION"
	HeaderRequestID  = "X-Request-Id"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP transport for one API server.
type Client struct {
	baseURL *url.URL
	session *session.Session
	client  *http.Client
	limiter *limiter.Limiter
	metrics *metrics.ClientMetrics
	logger  logger.Logger
	apiKey  string
	timeout time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the whole request timeout of the default HTTP client.
// It has no effect together with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLimiter makes every call wait for the limiter first.
func WithLimiter(l *limiter.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithMetrics records every call.
func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(
	baseURL, apiKey string,
	sess *session.Session,
	logger logger.Logger,
	opts ...Option,
) (*Client, error) {
	if sess == nil {
		return nil, errors.New("nil dependency: session")
	}
	if logger == nil {
		return nil, errors.New("nil dependency: logger")
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}

	c := &Client{
		baseURL: u,
		session: sess,
		logger:  logger,
		apiKey:  apiKey,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create new cookie jar: %w", err)
		}
		c.client = &http.Client{
			Jar:     jar,
			Timeout: c.timeout,
		}
	}

	return c, nil
}

// NewFromConfig builds a client for baseURL using timeouts and rate
// limits from the configuration.
func NewFromConfig(
	cfg *config.Config,
	baseURL string,
	sess *session.Session,
	logger logger.Logger,
	m *metrics.ClientMetrics,
) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("nil dependency: config")
	}

	return NewClient(baseURL, cfg.APIKey, sess, logger,
		WithTimeout(cfg.HTTP.Timeout),
		WithLimiter(limiter.New(cfg.HTTP.RateInterval, cfg.HTTP.RateBurst)),
		WithMetrics(m),
	)
}

var _ interfaces.Transport = (*Client)(nil)

// Call sends one request and returns the raw response body.
// GET and DELETE carry params in the query string, POST and PUT
// in a form encoded body.
func (c *Client) Call(
	ctx context.Context,
	method string,
	path []string,
	params map[string]string,
	useSessionAuth bool,
) (json.RawMessage, error) {
	var identity session.Identity
	if useSessionAuth {
		identity = c.session.Identity()
		if identity.IsZero() {
			return nil, fmt.Errorf("%s %s: %w", method, strings.Join(path, "/"), errs.ErrNoSession)
		}
	}

	u := c.resolve(path)

	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}

	var body io.Reader
	switch method {
	case http.MethodPost, http.MethodPut:
		body = strings.NewReader(values.Encode())
	default:
		if len(values) > 0 {
			u.RawQuery = values.Encode()
		}
	}

	requestID := uuid.NewString()
	ctx = logger.WithRequestID(ctx, requestID)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set(HeaderClientAuth, fmt.Sprintf(`id="%s", version="1"`, c.apiKey))
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if useSessionAuth {
		req.Header.Set(HeaderUserAuth, fmt.Sprintf(`username="%s", response="%s", version="1"`,
			identity.Email, AuthHash(identity.Email, identity.Password, u.EscapedPath())))
	}

	log := c.logger.With(ctx, "method", method, "path", u.EscapedPath())

	if c.limiter != nil {
		if err = c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	start := time.Now()

	res, err := c.client.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(method, 0, time.Since(start))
		return nil, fmt.Errorf("%s %s: %w", method, u.EscapedPath(), err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Errorf("close response body: %s", err)
		}
	}()

	if err = unzip.Response(res); err != nil {
		c.metrics.ObserveRequest(method, res.StatusCode, time.Since(start))
		return nil, fmt.Errorf("%s %s: %w", method, u.EscapedPath(), err)
	}

	payload, err := io.ReadAll(res.Body)
	elapsed := time.Since(start)
	c.metrics.ObserveRequest(method, res.StatusCode, elapsed)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, u.EscapedPath(), err)
	}

	log.Debugf("status %d in %s", res.StatusCode, elapsed)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &errs.APIError{
			Method:     method,
			Path:       u.EscapedPath(),
			StatusCode: res.StatusCode,
			Body:       payload,
		}
	}

	return json.RawMessage(payload), nil
}

// resolve appends escaped path segments to the base URL.
func (c *Client) resolve(path []string) *url.URL {
	escaped := make([]string, 0, len(path))
	for _, segment := range path {
		escaped = append(escaped, url.PathEscape(segment))
	}

	u := *c.baseURL
	joined := strings.TrimRight(u.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	u.RawPath = joined
	u.Path, _ = url.PathUnescape(joined)
	return &u
}

// AuthHash computes the user authentication response for uri:
// hex(sha256(hex(sha256(password)) + email + uri)).
func AuthHash(email, password, uri string) string {
	inner := sha256.Sum256([]byte(password))
	outer := sha256.Sum256([]byte(hex.EncodeToString(inner[:]) + email + uri))
	return hex.EncodeToString(outer[:])
}
