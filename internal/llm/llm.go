// Package llm is a thin uniform layer over the language-model
// backends. Configuration resolves each pipeline tier to one backend
// at startup; nothing in here escalates across tiers on its own.
package llm

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrProviderUnavailable covers connection refused and auth failures.
var ErrProviderUnavailable = errors.New("llm provider unavailable")

// ErrProviderTimeout covers request deadlines and slow generations.
var ErrProviderTimeout = errors.New("llm provider timed out")

// Request is one generation call.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Client is the capability every backend implements.
type Client interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Retryable reports whether err is worth one more attempt. Auth
// failures are not: retrying a bad key only burns time.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrProviderTimeout) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "auth") || strings.Contains(msg, "api key") {
		return false
	}
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "status 5") ||
		strings.Contains(msg, "eof")
}
