package hanscan

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithRetry_Success(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 3,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
	}

	callCount := 0
	result, err := WithRetry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "success", nil
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %q", result)
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
}

func TestWithRetry_RetryableError(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 3,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
	}

	callCount := 0
	result, err := WithRetry(context.Background(), cfg, func() (string, error) {
		callCount++
		if callCount < 3 {
			return "", &ProviderError{Message: "rate limited", Retryable: true}
		}
		return "success", nil
	})

	if err != nil {
		t.Fatalf("Expected no error after retries, got: %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %q", result)
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", callCount)
	}
}

func TestWithRetry_NonRetryableError(t *testing.T) {
	cfg := DefaultRetryConfig()

	callCount := 0
	_, err := WithRetry(context.Background(), cfg, func() (int, error) {
		callCount++
		return 0, &ProviderError{Message: "bad request", Retryable: false}
	})

	if err == nil {
		t.Fatal("Expected error")
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call for non-retryable error, got %d", callCount)
	}
}

func TestWithRetry_ExhaustsRetries(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   10 * time.Millisecond,
	}

	callCount := 0
	_, err := WithRetry(context.Background(), cfg, func() (int, error) {
		callCount++
		return 0, &ProviderError{Message: "still failing", Retryable: true}
	})

	if err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls (initial + 2 retries), got %d", callCount)
	}
}

func TestWithRetry_ContextCancellation(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 5,
		BaseDelay:  time.Second,
		MaxDelay:   time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())

	callCount := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := WithRetry(ctx, cfg, func() (int, error) {
			callCount++
			return 0, &ProviderError{Message: "failing", Retryable: true}
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got: %v", err)
		}
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Retry loop did not stop after cancellation")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"retryable provider error", &ProviderError{Retryable: true}, true},
		{"non-retryable provider error", &ProviderError{Retryable: false}, false},
		{"context canceled", context.Canceled, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryableProvider(t *testing.T) {
	calls := 0
	inner := providerFunc(func(ctx context.Context, words []string) (map[string]string, error) {
		calls++
		if calls < 2 {
			return nil, &ProviderError{Message: "transient", Retryable: true}
		}
		return map[string]string{"配置": "configuration"}, nil
	})

	p := NewRetryableProvider(inner, RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   10 * time.Millisecond,
	})

	got, err := p.TranslateBatch(context.Background(), []string{"配置"})
	if err != nil {
		t.Fatalf("Expected success after retry, got: %v", err)
	}
	if got["配置"] != "configuration" {
		t.Errorf("Unexpected result: %v", got)
	}
	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}
}

// providerFunc adapts a function to the Provider interface.
type providerFunc func(ctx context.Context, words []string) (map[string]string, error)

func (f providerFunc) TranslateBatch(ctx context.Context, words []string) (map[string]string, error) {
	return f(ctx, words)
}
