package share

import (
	"errors"
	"testing"
	"time"
)

func TestCalculateBackoffDoubles(t *testing.T) {
	e := &Engine{config: Config{
		RetryBackoff: time.Minute,
		MaxBackoff:   time.Hour,
	}}

	cases := []struct {
		attempts int
		want     time.Duration
	}{
		{1, time.Minute},
		{2, 2 * time.Minute},
		{3, 4 * time.Minute},
		{4, 8 * time.Minute},
	}
	for _, c := range cases {
		if got := e.calculateBackoff(c.attempts); got != c.want {
			t.Errorf("attempts=%d: got %s, want %s", c.attempts, got, c.want)
		}
	}
}

func TestCalculateBackoffCapped(t *testing.T) {
	e := &Engine{config: Config{
		RetryBackoff: time.Minute,
		MaxBackoff:   5 * time.Minute,
	}}

	if got := e.calculateBackoff(10); got != 5*time.Minute {
		t.Errorf("got %s, want cap %s", got, 5*time.Minute)
	}
}

func TestIsPermanentFailure(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("550 mailbox unavailable"), true},
		{errors.New("554 transaction failed"), true},
		{errors.New("451 try again later"), false},
		{errors.New("dial tcp: connection refused"), false},
	}
	for _, c := range cases {
		if got := isPermanentFailure(c.err); got != c.want {
			t.Errorf("%q: got %v, want %v", c.err, got, c.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxAttempts <= 0 || cfg.RateLimit <= 0 {
		t.Fatalf("defaults not positive: %+v", cfg)
	}
}
