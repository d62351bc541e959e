package partner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestValidateCouponSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid method"))
			return
		}
		if r.URL.Path != "/coupons/validate" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid path"))
			return
		}
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid content type"))
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid auth"))
			return
		}
		_, _ = w.Write([]byte(`{"valid":true,"discount":12.5}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-token", time.Second, "plumeria-retreat-api/1.0")
	result, err := client.ValidateCoupon(context.Background(), "spring12")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Valid || result.Discount != 12.5 {
		t.Fatalf("result = %+v, want valid with discount 12.5", result)
	}
}

func TestValidateCouponHTTPErrorIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad request"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "token", time.Second, "")
	_, err := client.ValidateCoupon(context.Background(), "code")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status=400") || !strings.Contains(err.Error(), "body=bad request") {
		t.Fatalf("expected status and body in error, got %v", err)
	}
}

func TestValidateCouponTimeoutClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "token", 50*time.Millisecond, "")
	_, err := client.ValidateCoupon(context.Background(), "code")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("expected timeout classification, got %v", err)
	}
}

func TestValidateCouponNetworkErrorClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "token", time.Second, "")
	_, err := client.ValidateCoupon(context.Background(), "code")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "network error") {
		t.Fatalf("expected network classification, got %v", err)
	}
}

func TestValidateCouponEmptyBaseURL(t *testing.T) {
	client := NewClient("", "token", time.Second, "")
	_, err := client.ValidateCoupon(context.Background(), "code")
	if err == nil {
		t.Fatal("expected error for empty base URL")
	}
	if !strings.Contains(err.Error(), "base_url is empty") {
		t.Fatalf("unexpected error: %v", err)
	}
}
