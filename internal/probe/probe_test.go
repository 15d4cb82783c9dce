package probe

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestCheck_Healthy(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	if err := Check(ts.URL); err != nil {
		t.Errorf("expected healthy check, got %v", err)
	}
}

func TestCheck_Redirect(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/elsewhere")
		w.WriteHeader(http.StatusFound)
	}))
	defer ts.Close()

	// 3xx counts as ready; redirects are not followed
	if err := Check(ts.URL); err != nil {
		t.Errorf("expected 302 to count as ready, got %v", err)
	}
}

func TestCheck_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	if err := Check(ts.URL); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestCheck_Unreachable(t *testing.T) {
	if err := Check("http://127.0.0.1:1/api/health"); err == nil {
		t.Error("expected error for unreachable server")
	}
}

func TestWaitReady_EventuallyReady(t *testing.T) {
	var ready atomic.Bool

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ready.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	go func() {
		time.Sleep(300 * time.Millisecond)
		ready.Store(true)
	}()

	if err := WaitReady(ts.URL, 5*time.Second); err != nil {
		t.Errorf("expected WaitReady to succeed, got %v", err)
	}
}

func TestWaitReady_Timeout(t *testing.T) {
	start := time.Now()
	err := WaitReady("http://127.0.0.1:1/api/health", 500*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("WaitReady took too long to give up: %s", elapsed)
	}
}
