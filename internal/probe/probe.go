// Package probe provides HTTP readiness checking for a running mockapi
// instance.
package probe

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// Backoff settings for readiness polling
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	multiplier      = 2.0

	requestTimeout = 5 * time.Second
)

// Check performs a single readiness check against url. Any 2xx or 3xx
// response counts as ready.
func Check(url string) error {
	client := &http.Client{
		Timeout: requestTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	// HEAD first; some handlers only answer GET.
	resp, err := client.Head(url)
	if err == nil {
		resp.Body.Close()
		if resp.StatusCode >= 200 && resp.StatusCode < 400 {
			return nil
		}
	}

	resp, err = client.Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return nil
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}

// WaitReady polls url with exponential backoff until it answers or timeout
// elapses.
func WaitReady(url string, timeout time.Duration) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialInterval
	b.MaxInterval = maxInterval
	b.Multiplier = multiplier
	b.MaxElapsedTime = timeout

	operation := func() error {
		return Check(url)
	}

	if err := backoff.Retry(operation, b); err != nil {
		return fmt.Errorf("service at %s not ready after %s: %w", url, timeout, err)
	}
	return nil
}
