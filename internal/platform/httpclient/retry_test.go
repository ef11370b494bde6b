package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
)

func TestBackoff(t *testing.T) {
	t.Parallel()

	cfg := config.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
		Multiplier:      2.0,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: time.Duration(float64(100*time.Millisecond) * pow(2.0, 1))},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 4, base: cfg.MaxInterval},
		{attempt: 10, base: cfg.MaxInterval},
	}

	for _, tt := range tests {
		lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
		hi := time.Duration(float64(tt.base) * (1 + jitterFraction))

		var spread bool
		first := backoff(tt.attempt, cfg)
		for range 200 {
			delay := backoff(tt.attempt, cfg)
			if delay < lo || delay > hi {
				t.Fatalf("attempt %d: delay %v not in [%v, %v]", tt.attempt, delay, lo, hi)
			}
			spread = spread || delay != first
		}
		if !spread {
			t.Errorf("attempt %d: 200 samples all equal %v, want jitter", tt.attempt, first)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "wrapped deadline", err: fmt.Errorf("posting snapshot: %w", context.DeadlineExceeded), want: false},
		{name: "dial refused", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "connection reset", err: errors.New("read: connection reset by peer"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		statusCode int
		want       bool
	}{
		{http.StatusOK, false},
		{http.StatusAccepted, false},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusRequestTimeout, true},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusNotImplemented, false},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
		{http.StatusGatewayTimeout, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			t.Parallel()
			if got := isRetryableStatus(tt.statusCode); got != tt.want {
				t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.statusCode, got, tt.want)
			}
		})
	}
}

// pow is a test helper for integer-base exponentiation.
func pow(base float64, exp int) float64 {
	result := 1.0
	for range exp {
		result *= base
	}
	return result
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 21, 7, 28, 0, 0, time.UTC)

	tests := []struct {
		name   string
		header string
		limit  time.Duration
		want   time.Duration
	}{
		{name: "empty", header: "", limit: time.Minute, want: 0},
		{name: "seconds", header: "2", limit: time.Minute, want: 2 * time.Second},
		{name: "capped", header: "120", limit: 10 * time.Second, want: 10 * time.Second},
		{name: "zero", header: "0", limit: time.Minute, want: 0},
		{name: "negative", header: "-3", limit: time.Minute, want: 0},
		{name: "http date ahead", header: "Wed, 21 Oct 2026 07:28:30 GMT", limit: time.Minute, want: 30 * time.Second},
		{name: "http date capped", header: "Wed, 21 Oct 2026 08:00:00 GMT", limit: time.Minute, want: time.Minute},
		{name: "http date past", header: "Wed, 21 Oct 2026 07:00:00 GMT", limit: time.Minute, want: 0},
		{name: "garbage", header: "soon", limit: time.Minute, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := parseRetryAfter(tt.header, tt.limit, now); got != tt.want {
				t.Errorf("parseRetryAfter(%q, %v) = %v, want %v", tt.header, tt.limit, got, tt.want)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *http.Response
		err  error
		want string
	}{
		{name: "accepted", resp: &http.Response{StatusCode: http.StatusAccepted}, want: "success"},
		{name: "rejected", resp: &http.Response{StatusCode: http.StatusUnprocessableEntity}, want: "error"},
		{name: "exhausted", resp: &http.Response{StatusCode: http.StatusBadGateway}, err: errors.New("HTTP 502"), want: "error"},
		{name: "breaker open", err: gobreaker.ErrOpenState, want: "circuit_open"},
		{name: "half-open limit", err: gobreaker.ErrTooManyRequests, want: "circuit_open"},
		{name: "canceled", err: fmt.Errorf("post: %w", context.Canceled), want: "canceled"},
		{name: "transport", err: errors.New("connection refused"), want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := outcome(tt.resp, tt.err); got != tt.want {
				t.Errorf("outcome() = %q, want %q", got, tt.want)
			}
		})
	}
}
