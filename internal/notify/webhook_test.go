package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hamed0406/resourcemonitor/internal/domain"
)

func TestWebhook_PostsTextPayload(t *testing.T) {
	var (
		calls       int
		body        string
		contentType string
		method      string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		contentType = r.Header.Get("Content-Type")
		method = r.Method
		w.WriteHeader(200)
	}))
	defer ts.Close()

	if err := NewWebhook(ts.URL).Notify(context.Background(), "HTTPError: foo"); err != nil {
		t.Fatalf("notify err: %v", err)
	}
	if calls != 1 {
		t.Fatalf("want exactly one POST, got %d", calls)
	}
	if method != http.MethodPost {
		t.Fatalf("want POST, got %s", method)
	}
	if body != `{"text":"HTTPError: foo"}` {
		t.Fatalf("payload not as expected: %s", body)
	}
	if contentType != "application/json" {
		t.Fatalf("want application/json, got %q", contentType)
	}
}

func TestWebhook_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	err := NewWebhook(ts.URL).Notify(context.Background(), "X")
	var ne *domain.NotifyError
	if !errors.As(err, &ne) {
		t.Fatalf("want *domain.NotifyError, got %T %v", err, err)
	}
	if ne.StatusCode != 500 || ne.Endpoint != ts.URL {
		t.Fatalf("unexpected notify error: %+v", ne)
	}
}

func TestWebhook_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	err := NewWebhook(url).Notify(context.Background(), "X")
	var ne *domain.NotifyError
	if !errors.As(err, &ne) || ne.Cause == nil {
		t.Fatalf("want NotifyError with cause, got %v", err)
	}
}
