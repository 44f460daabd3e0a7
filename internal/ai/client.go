package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

// MaxReplyRunes caps what a completion hands back to the handlers,
// keeping room inside Discord's 2000-character message limit.
const MaxReplyRunes = 1900

var (
	// ErrNotConfigured means no backend credential was provided.
	ErrNotConfigured = errors.New("completion backend is not configured")
	// ErrTimeout means the backend call exceeded the configured timeout.
	ErrTimeout = errors.New("completion timed out")
	// ErrBackend wraps any other backend failure.
	ErrBackend = errors.New("completion backend error")
)

// Client runs a Provider with a hard timeout and normalized errors.
// A nil provider is valid and reports ErrNotConfigured on every call.
type Client struct {
	provider Provider
	timeout  time.Duration
	system   string
}

func New(provider Provider, timeout time.Duration, system string) *Client {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Client{provider: provider, timeout: timeout, system: system}
}

// Configured reports whether a backend provider is wired in.
func (c *Client) Configured() bool {
	return c.provider != nil
}

// Complete asks the backend for a completion of prompt. The call is
// bounded by the client timeout; a late result is dropped. All failures
// come back as ErrNotConfigured, ErrTimeout or wrapped ErrBackend.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.provider == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1) // buffered so a late provider return never leaks the goroutine

	go func() {
		text, err := c.provider.Generate(ctx, c.system, prompt)
		done <- result{text: text, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			if errors.Is(res.err, context.DeadlineExceeded) {
				return "", ErrTimeout
			}
			return "", fmt.Errorf("%w: %v", ErrBackend, res.err)
		}
		return Truncate(res.text, MaxReplyRunes), nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrBackend, ctx.Err())
	}
}

// Close releases the underlying provider if it holds a connection.
func (c *Client) Close() error {
	if closer, ok := c.provider.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Truncate cuts s to at most limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "…"
}
