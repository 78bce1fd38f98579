package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeClient struct {
	calls int
	errs  []error
	out   string
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) Generate(context.Context, Request) (string, error) {
	f.calls++
	if f.calls <= len(f.errs) && f.errs[f.calls-1] != nil {
		return "", f.errs[f.calls-1]
	}
	return f.out, nil
}

func TestRetrySucceedsAfterTransientError(t *testing.T) {
	base := &fakeClient{errs: []error{ErrProviderTimeout}, out: "ok"}
	c := WithRetry(base, nil, "localhost")

	got, err := c.Generate(context.Background(), Request{Prompt: "p"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "ok" {
		t.Errorf("got %q", got)
	}
	if base.calls != 2 {
		t.Errorf("calls = %d, want 2", base.calls)
	}
}

func TestRetryBounded(t *testing.T) {
	base := &fakeClient{errs: []error{ErrProviderTimeout, ErrProviderTimeout, ErrProviderTimeout}}
	c := WithRetry(base, nil, "localhost")

	_, err := c.Generate(context.Background(), Request{})
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("err = %v", err)
	}
	if base.calls != retryAttempts {
		t.Errorf("calls = %d, want %d", base.calls, retryAttempts)
	}
}

func TestNoRetryOnAuthFailure(t *testing.T) {
	authErr := fmt.Errorf("%w: openai auth failed (status 401)", ErrProviderUnavailable)
	base := &fakeClient{errs: []error{authErr, nil}}
	c := WithRetry(base, nil, "api.openai.com")

	_, err := c.Generate(context.Background(), Request{})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("err = %v", err)
	}
	if base.calls != 1 {
		t.Errorf("calls = %d, want 1 (auth errors are not retryable)", base.calls)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timeout", ErrProviderTimeout, true},
		{"deadline", context.DeadlineExceeded, true},
		{"refused", errors.New("dial tcp: connection refused"), true},
		{"server error", errors.New("ollama returned status 502"), true},
		{"auth", errors.New("invalid api key"), false},
		{"other", errors.New("model not found"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Retryable(tt.err); got != tt.want {
				t.Errorf("Retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestHostLimiterSharesBucketPerHost(t *testing.T) {
	hl := NewHostLimiter(1000, 1)
	ctx := context.Background()

	if err := hl.WaitHost(ctx, "http://localhost:11434"); err != nil {
		t.Fatal(err)
	}
	if err := hl.WaitHost(ctx, "not a url"); err != nil {
		t.Fatal(err)
	}
	if got := len(hl.m); got != 2 {
		t.Errorf("buckets = %d, want 2", got)
	}
}
