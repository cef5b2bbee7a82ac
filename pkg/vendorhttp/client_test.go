package vendorhttp_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"billing-automation/pkg/vendorhttp"
)

func TestClientDo(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	var hits atomic.Int32

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(int(status.Load()))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := vendorhttp.New(nil, vendorhttp.Settings{Name: "test", ConsecutiveFailures: 2, OpenTimeout: time.Minute})

	t.Run("Passes successful responses through", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
		resp, err := c.Do(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("Client errors do not trip the breaker", func(t *testing.T) {
		status.Store(http.StatusNotFound)
		for i := 0; i < 3; i++ {
			req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
			resp, err := c.Do(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			resp.Body.Close()
		}
		if c.State() != "closed" {
			t.Errorf("expected closed breaker, got %s", c.State())
		}
	})

	t.Run("Server errors return the response and then open the breaker", func(t *testing.T) {
		status.Store(http.StatusBadGateway)
		for i := 0; i < 2; i++ {
			req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
			resp, err := c.Do(req)
			if err != nil {
				t.Fatalf("attempt %d: unexpected error: %v", i, err)
			}
			if resp.StatusCode != http.StatusBadGateway {
				t.Errorf("expected 502, got %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		before := hits.Load()
		req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
		_, err := c.Do(req)
		if !errors.Is(err, vendorhttp.ErrCircuitOpen) {
			t.Fatalf("expected ErrCircuitOpen, got %v", err)
		}
		if hits.Load() != before {
			t.Errorf("open breaker must not reach upstream")
		}
	})
}

func TestClientTransportError(t *testing.T) {
	c := vendorhttp.New(&http.Client{Timeout: time.Second}, vendorhttp.DefaultSettings("down"))
	req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/unreachable", nil)
	if _, err := c.Do(req); err == nil {
		t.Fatal("expected transport error")
	}
}
