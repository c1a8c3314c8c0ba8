package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clausematch/clausematch/internal/model"
	"github.com/clausematch/clausematch/internal/worker"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "ClauseMatch-test/1.0",
		MaxBodyBytes: 1 << 20,
	}
}

func TestFetchText_PlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			http.NotFound(w, r)
		case "/contract.txt":
			if r.Header.Get("User-Agent") != "ClauseMatch-test/1.0" {
				t.Errorf("Unexpected user agent: %s", r.Header.Get("User-Agent"))
			}
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("Fee EUR 1500."))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), worker.NewLimiter(100, 5))

	text, err := f.FetchText(context.Background(), server.URL+"/contract.txt")
	if err != nil {
		t.Fatalf("FetchText failed: %v", err)
	}
	if text != "Fee EUR 1500." {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestFetchText_HTMLReducedToText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><script>x()</script><p>The fee is EUR 1500.</p></body></html>"))
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), worker.NewLimiter(100, 5))

	text, err := f.FetchText(context.Background(), server.URL+"/terms")
	if err != nil {
		t.Fatalf("FetchText failed: %v", err)
	}
	if !strings.Contains(text, "The fee is EUR 1500.") {
		t.Errorf("Expected visible text, got %q", text)
	}
	if strings.Contains(text, "x()") {
		t.Errorf("Script content leaked into text: %q", text)
	}
}

func TestFetchText_DisallowedByRobots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		_, _ = w.Write([]byte("secret"))
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), worker.NewLimiter(100, 5))

	_, err := f.FetchText(context.Background(), server.URL+"/private/contract.txt")
	if err == nil {
		t.Fatal("Expected robots.txt to block the fetch")
	}
	if !strings.Contains(err.Error(), "robots.txt") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestFetchText_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := NewFetcher(testHTTPConfig(), worker.NewLimiter(100, 5))

	if _, err := f.FetchText(context.Background(), server.URL+"/doc"); err == nil {
		t.Error("Expected error for 503 response")
	}
}

func TestFetchText_BodyCapped(t *testing.T) {
	cfg := testHTTPConfig()
	cfg.MaxBodyBytes = 10

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
	}))
	defer server.Close()

	f := NewFetcher(cfg, worker.NewLimiter(100, 5))

	text, err := f.FetchText(context.Background(), server.URL+"/doc")
	if err != nil {
		t.Fatalf("FetchText failed: %v", err)
	}
	if len(text) != 10 {
		t.Errorf("Expected body capped at 10 bytes, got %d", len(text))
	}
}
