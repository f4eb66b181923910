// Package submit posts parsed quiz questions to a form-building web app,
// such as a Google Apps Script deployment, and reports the URLs it returns.
package submit

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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/quizdoc/internal/httputil"
	"github.com/tsawler/quizdoc/quiz"
)

// ErrNoEndpoint is returned when no endpoint URL is configured.
var ErrNoEndpoint = errors.New("no endpoint configured")

// DefaultTimeout bounds one submission including retries.
const DefaultTimeout = 60 * time.Second

// DefaultMaxRetries is the retry count config files start from.
const DefaultMaxRetries = 3

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "quizdoc"

// maxResponseBytes bounds the response body kept in memory.
const maxResponseBytes = 1 << 20

// Config holds the submission settings. It is passed explicitly; nothing
// is read from the environment.
type Config struct {
	Endpoint string

	// Timeout bounds one submission including retries. Zero means
	// DefaultTimeout.
	Timeout time.Duration

	// MaxRetries is the number of retries on HTTP 429. Zero sends the
	// request once.
	MaxRetries int

	UserAgent string
}

// Client posts question lists to one endpoint.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient validates cfg and returns a Client for its endpoint.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrNoEndpoint
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q is not an absolute http(s) URL", cfg.Endpoint)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Response is what the endpoint answered.
type Response struct {
	Status       int
	Body         []byte
	EditURL      string
	PublishedURL string
}

// Text returns the raw response body.
func (r *Response) Text() string {
	return string(r.Body)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("endpoint returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("endpoint returned HTTP %d: %s", e.StatusCode, e.Body)
}

// replyJSON is the optional JSON object the web app answers with.
type replyJSON struct {
	EditURL      string `json:"editUrl"`
	PublishedURL string `json:"publishedUrl"`
}

// Submit posts qs as a JSON array in a single request. HTTP 429 responses
// are retried; redirects are followed, since Apps Script answers with 302.
func (c *Client) Submit(ctx context.Context, qs []quiz.Question) (*Response, error) {
	payload, err := quiz.Marshal(qs)
	if err != nil {
		return nil, fmt.Errorf("encoding questions: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("X-Request-Id", requestID)

	log := c.log.With(zap.String("request_id", requestID))
	log.Debug("submitting questions",
		zap.String("endpoint", redact(c.cfg.Endpoint)),
		zap.Int("questions", len(qs)),
		zap.Int("bytes", len(payload)),
	)

	start := time.Now()
	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries, log)
	if err != nil {
		return nil, fmt.Errorf("posting questions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	log.Info("endpoint responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}

	out := &Response{Status: resp.StatusCode, Body: body}
	var reply replyJSON
	if json.Unmarshal(body, &reply) == nil {
		out.EditURL = reply.EditURL
		out.PublishedURL = reply.PublishedURL
	} else {
		log.Debug("response body is not a JSON object; keeping raw text")
	}
	return out, nil
}

// redact drops the query string, which may carry deployment keys.
func redact(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	u.RawQuery = ""
	u.User = nil
	return u.String()
}
