package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plumeria/retreat-api/internal/pkg/partner"
)

func TestLocalCouponValidator(t *testing.T) {
	v := NewLocalCouponValidator()
	ctx := context.Background()

	tests := []struct {
		code         string
		wantValid    bool
		wantDiscount float64
	}{
		{"welcome10", true, 10},
		{"WELCOME10", true, 10},
		{"WeLcOmE10", true, 10},
		{"  welcome10  ", true, 10},
		{"welcome20", false, 0},
		{"", false, 0},
		{"random", false, 0},
	}

	for _, tt := range tests {
		got := v.Validate(ctx, tt.code)
		if got.Valid != tt.wantValid || got.Discount != tt.wantDiscount {
			t.Errorf("Validate(%q) = %+v, want valid=%v discount=%v",
				tt.code, got, tt.wantValid, tt.wantDiscount)
		}
	}
}

func TestRemoteCouponValidatorSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/coupons/validate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid":true,"discount":15}`))
	}))
	t.Cleanup(server.Close)

	v := NewRemoteCouponValidator(partner.NewClient(server.URL, "token", time.Second, ""))
	got := v.Validate(context.Background(), "summer15")
	if !got.Valid || got.Discount != 15 {
		t.Fatalf("Validate() = %+v, want valid=true discount=15", got)
	}
}

func TestRemoteCouponValidatorRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid":false,"discount":0}`))
	}))
	t.Cleanup(server.Close)

	v := NewRemoteCouponValidator(partner.NewClient(server.URL, "", time.Second, ""))
	got := v.Validate(context.Background(), "expired")
	if got.Valid || got.Discount != 0 {
		t.Fatalf("Validate() = %+v, want invalid", got)
	}
}

// A transport failure must read as invalid, never as an error that could
// block the booking flow.
func TestRemoteCouponValidatorFailsOpen(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)

		v := NewRemoteCouponValidator(partner.NewClient(server.URL, "", time.Second, ""))
		got := v.Validate(context.Background(), "welcome10")
		if got.Valid || got.Discount != 0 {
			t.Fatalf("Validate() = %+v, want invalid on server error", got)
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		v := NewRemoteCouponValidator(partner.NewClient(server.URL, "", time.Second, ""))
		got := v.Validate(context.Background(), "welcome10")
		if got.Valid || got.Discount != 0 {
			t.Fatalf("Validate() = %+v, want invalid on network error", got)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		t.Cleanup(server.Close)

		v := NewRemoteCouponValidator(partner.NewClient(server.URL, "", time.Second, ""))
		got := v.Validate(context.Background(), "welcome10")
		if got.Valid {
			t.Fatalf("Validate() = %+v, want invalid on decode error", got)
		}
	})
}
