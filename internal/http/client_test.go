package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_GetJSON(t *testing.T) {
	var gotUA, gotAccept string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"count": 2}`))
	}))
	defer server.Close()

	client := NewClient("test-agent/1.0", 5*time.Second)

	var body struct {
		Count int `json:"count"`
	}
	if err := client.GetJSON(context.Background(), server.URL, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if body.Count != 2 {
		t.Errorf("Count = %d, want 2", body.Count)
	}
	if gotUA != "test-agent/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "test-agent/1.0")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_GetJSON_StatusError(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		retryAfter    string
		wantTransient bool
		wantWait      time.Duration
	}{
		{"rate limited", 429, "5", true, 5 * time.Second},
		{"unavailable", 503, "", true, 0},
		{"server error", 500, "", true, 0},
		{"not found", 404, "", false, 0},
		{"bad request", 400, "", false, 0},
		{"fractional retry-after", 503, "1.5", true, 1500 * time.Millisecond},
		{"garbage retry-after", 503, "soon", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient("test-agent/1.0", 5*time.Second)

			var body struct{}
			err := client.GetJSON(context.Background(), server.URL, &body)
			if err == nil {
				t.Fatal("expected error")
			}

			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("expected *StatusError, got %T: %v", err, err)
			}
			if se.Code != tt.status {
				t.Errorf("Code = %d, want %d", se.Code, tt.status)
			}
			if se.Transient() != tt.wantTransient {
				t.Errorf("Transient() = %v, want %v", se.Transient(), tt.wantTransient)
			}
			if se.RetryAfter != tt.wantWait {
				t.Errorf("RetryAfter = %v, want %v", se.RetryAfter, tt.wantWait)
			}
		})
	}
}

func TestClient_GetJSON_InvalidBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient("test-agent/1.0", 5*time.Second)

	var body struct{}
	if err := client.GetJSON(context.Background(), server.URL, &body); err == nil {
		t.Error("expected error for invalid JSON body")
	}
}
