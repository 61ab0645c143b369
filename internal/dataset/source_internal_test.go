package dataset

import (
	"context"
	"testing"
	"time"
)

func TestHTTPSourceTimeoutBounds(t *testing.T) {
	if got := (HTTPSource{}).timeout(context.Background()); got != DefaultHTTPTimeout {
		t.Fatalf("unset timeout: want %s, got %s", DefaultHTTPTimeout, got)
	}
	if got := (HTTPSource{Timeout: time.Second}).timeout(context.Background()); got != time.Second {
		t.Fatalf("want 1s, got %s", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if got := (HTTPSource{}).timeout(ctx); got <= 0 || got > 200*time.Millisecond {
		t.Fatalf("ctx deadline should cap the timeout, got %s", got)
	}

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()
	if got := (HTTPSource{Timeout: time.Minute}).timeout(expired); got != time.Millisecond {
		t.Fatalf("expired ctx should leave the minimum timeout, got %s", got)
	}
}
