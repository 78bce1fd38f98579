package llm

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	retryAttempts  = 2 // total calls, not extra retries
	retryBaseDelay = 300 * time.Millisecond
)

// RetryingClient wraps a backend with the bounded retry policy: a
// fixed small attempt count with a short fixed delay, retrying only
// classified-retryable failures, then surfacing the error. No
// cross-tier failover happens here.
type RetryingClient struct {
	base    Client
	limiter *HostLimiter
	host    string
}

func WithRetry(base Client, limiter *HostLimiter, host string) *RetryingClient {
	return &RetryingClient{base: base, limiter: limiter, host: host}
}

func (r *RetryingClient) Name() string { return r.base.Name() }

func (r *RetryingClient) Generate(ctx context.Context, req Request) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if r.limiter != nil {
			if err := r.limiter.WaitHost(ctx, r.host); err != nil {
				return "", err
			}
		}
		out, err := r.base.Generate(ctx, req)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !Retryable(err) || attempt == retryAttempts {
			break
		}
		slog.Warn("llm call failed, retrying", "provider", r.base.Name(), "attempt", attempt, "err", err)
		select {
		case <-time.After(retryBaseDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}

// HostLimiter rate-limits per hostname so hammering one provider
// endpoint (localhost ollama included) stays polite.
type HostLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	if lim, ok := hl.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(hl.r, hl.b)
	hl.m[host] = lim
	return lim
}

// WaitHost blocks until the limiter for host admits one call. A raw
// URL is accepted too; unparseable input shares a fallback bucket.
func (hl *HostLimiter) WaitHost(ctx context.Context, raw string) error {
	host := raw
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Host
	}
	if host == "" {
		host = "_"
	}
	return hl.limiterFor(host).Wait(ctx)
}
