package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paybyte/paybyte-sdk-go/pkg/retry"
	"github.com/paybyte/paybyte-sdk-go/pkg/sign"
	"go.uber.org/zap"
)

// Request headers understood by the gateway.
const (
	HeaderMerchantID     = "X-Merchant-Id"
	HeaderSignature      = "X-Api-Signature"
	HeaderIdempotencyKey = "X-Idempotency-Key"
)

// HTTPDoer abstracts HTTP request execution for testing and custom
// transports. The standard *http.Client satisfies this interface.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the low-level gateway transport. All methods are safe for
// concurrent use; the client holds no per-call state.
type Client struct {
	baseURL    string
	merchantID string
	apiKey     string
	httpClient HTTPDoer
	policy     retry.Policy
	debug      bool
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP transport. Useful for tests and
// for applications that need custom proxies or TLS settings.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.httpClient = doer }
}

// WithRetryPolicy sets the retry policy applied to every call. Zero fields
// fall back to retry.DefaultPolicy values.
func WithRetryPolicy(p retry.Policy) Option {
	return func(c *Client) { c.policy = p }
}

// WithTimeout sets the whole-round-trip timeout of the default HTTP client.
// Ignored when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if hc, ok := c.httpClient.(*http.Client); ok {
			hc.Timeout = d
		}
	}
}

// WithDebug enables verbose request/response logging through the global zap
// logger.
func WithDebug(debug bool) Option {
	return func(c *Client) { c.debug = debug }
}

// NewClient creates a gateway transport for the given endpoint and merchant
// credentials. The API key is used to sign every request body with
// HMAC-SHA256; the gateway rejects requests whose signature does not match.
func NewClient(baseURL, merchantID, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		merchantID: merchantID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		policy:     retry.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resultEnvelope is the success envelope of every gateway response.
type resultEnvelope[T any] struct {
	Result T `json:"result"`
}

// call performs one logical gateway operation through the retry executor and
// decodes the success envelope into T.
//
// The body is marshaled once; every retry attempt re-sends the same bytes and
// the same idempotency key, so a replayed POST cannot double-create a
// resource. idemKey is empty for safe operations.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, idemKey string) (*T, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
	}

	return retry.Do(ctx, c.policy, func(ctx context.Context) (*T, error) {
		raw, err := c.roundTrip(ctx, method, path, query, payload, idemKey)
		if err != nil {
			return nil, err
		}
		var env resultEnvelope[T]
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
		return &env.Result, nil
	})
}

// roundTrip performs a single signed HTTP attempt and returns the raw success
// body. Non-2xx responses become *Error; transport failures are returned
// as-is so the retry executor classifies them as transient.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, payload []byte, idemKey string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}

	req.Header.Set(HeaderMerchantID, c.merchantID)
	req.Header.Set(HeaderSignature, sign.HMACSHA256Hex([]byte(c.apiKey), payload))
	if len(payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if idemKey != "" {
		req.Header.Set(HeaderIdempotencyKey, idemKey)
	}

	if c.debug {
		zap.L().Debug("gateway request",
			zap.String("method", method),
			zap.String("url", u),
			zap.ByteString("body", payload))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if c.debug {
		zap.L().Debug("gateway response",
			zap.String("method", method),
			zap.String("url", u),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(resp.StatusCode, raw)
	}
	return raw, nil
}
