// Package provider contains HTTP clients for the upstream data bundle aggregators.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const (
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 1 << 20
	statusRetries   = 3
)

// User-facing rejection reasons. Raw provider text is never shown to buyers.
const (
	ReasonDuplicate = "duplicate order, wait 5 minutes before retrying this number"
	ReasonRecipient = "invalid recipient number"
	ReasonGeneric   = "could not complete purchase, try again later"
)

// Config holds the connection settings of one provider
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	WebhookURL string
}

// SafeReason maps a raw provider message to a reason safe to show to users
func SafeReason(raw string) string {
	msg := strings.ToLower(raw)

	switch {
	case strings.Contains(msg, "duplicate"):
		return ReasonDuplicate
	case strings.Contains(msg, "invalid") &&
		(strings.Contains(msg, "number") || strings.Contains(msg, "phone") || strings.Contains(msg, "recipient")):
		return ReasonRecipient
	default:
		return ReasonGeneric
	}
}

// rejected builds a rejected result from a raw provider message
func rejected(raw string) domain.ProviderResult {
	return domain.Rejected(SafeReason(raw), raw)
}

// failure classifies a non-2xx response. Server-side errors, throttling and
// timeouts leave the outcome unknown.
func failure(status int, raw string) domain.ProviderResult {
	detail := fmt.Sprintf("status %d: %s", status, raw)
	switch {
	case status >= http.StatusInternalServerError,
		status == http.StatusTooManyRequests,
		status == http.StatusRequestTimeout:
		return domain.Transient(detail)
	}
	return domain.Rejected(SafeReason(raw), detail)
}

// response is a raw provider reply
type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (r *response) decode(v any) error {
	return json.Unmarshal(r.body, v)
}

// transport is the HTTP plumbing shared by all providers.
// Order placement is never retried; status lookups are.
type transport struct {
	baseURL string
	headers map[string]string
	client  *http.Client
	status  *retryablehttp.Client
	logger  *zap.Logger
}

func newTransport(name domain.Provider, cfg Config, headers map[string]string, logger *zap.Logger) *transport {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	named := logger.With(zap.String("provider", string(name)))

	status := retryablehttp.NewClient()
	status.RetryMax = statusRetries
	status.RetryWaitMin = 200 * time.Millisecond
	status.RetryWaitMax = 2 * time.Second
	status.HTTPClient.Timeout = timeout
	status.Logger = &leveledLogger{logger: named.Sugar()}

	return &transport{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		headers: headers,
		client:  &http.Client{Timeout: timeout},
		status:  status,
		logger:  named,
	}
}

// post sends a JSON body. A returned error means the request may or may not
// have reached the provider.
func (t *transport) post(ctx context.Context, path string, body any) (*response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("provider: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("provider: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

// get performs a retried GET
func (t *transport) get(ctx context.Context, path string) (*response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("provider: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.status.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

func readResponse(resp *http.Response) (*response, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("provider: failed to read response: %w", err)
	}
	return &response{status: resp.StatusCode, body: body}, nil
}

// transportFailure classifies an error from post or get
func transportFailure(err error) domain.ProviderResult {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.Transient("timeout: " + err.Error())
	}
	return domain.Transient(err.Error())
}

// leveledLogger adapts zap to retryablehttp.LeveledLogger
type leveledLogger struct {
	logger *zap.SugaredLogger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}
