package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/time/rate"
)

// Client calls a LibreTranslate-style HTTP endpoint. One request per call, no
// retries; every failure mode degrades to the original text.
type Client struct {
	endpoint string
	httpc    *http.Client
	limiter  *rate.Limiter
}

// request is the wire format the endpoint expects. The source language is
// always auto-detected by the remote service.
type request struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type response struct {
	TranslatedText string `json:"translatedText"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpc = c }
}

// WithRateLimit spaces outbound calls to at most n per second. Zero or
// negative disables limiting.
func WithRateLimit(n int) Option {
	return func(cl *Client) {
		if n > 0 {
			cl.limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(n)), n)
		}
	}
}

// NewClient creates a translation client for the given endpoint URL.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		httpc:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Translate sends one text to the endpoint and returns the translation.
// Empty input returns empty without a network call. On any transport,
// protocol, or decode failure the original text comes back and the failure is
// logged for diagnostics only.
func (c *Client) Translate(ctx context.Context, text, target string) string {
	if text == "" {
		return ""
	}

	translated, err := c.do(ctx, text, target)
	if err != nil {
		logx.WithContext(ctx).Errorf("translate to %s failed, keeping original: %v", target, err)
		return text
	}
	return translated
}

func (c *Client) do(ctx context.Context, text, target string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	body, err := json.Marshal(request{
		Q:      text,
		Source: "auto",
		Target: target,
		Format: "text",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &statusError{code: resp.StatusCode}
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.TranslatedText == "" {
		return "", errNoTranslation
	}
	return out.TranslatedText, nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected status " + http.StatusText(e.code)
}

var errNoTranslation = &noTranslationError{}

type noTranslationError struct{}

func (*noTranslationError) Error() string {
	return "response missing translatedText"
}
