package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
)

func newBackend(t *testing.T, h http.HandlerFunc) stripe.Backend {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
}

func TestMinorUnits(t *testing.T) {
	t.Parallel()

	cases := map[string]int64{
		"10":    1000,
		"19.99": 1999,
		"0.105": 11,
		"0.1":   10,
		"250.5": 25050,
		"0.004": 0,
		"-1.00": -100,
	}
	for in, want := range cases {
		if got := MinorUnits(decimal.RequireFromString(in)); got != want {
			t.Fatalf("MinorUnits(%s)=%d, want %d", in, got, want)
		}
	}
}

func TestCreateIntent_ReturnsClientSecret(t *testing.T) {
	t.Parallel()

	var gotForm string
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			http.Error(w, `{"error":{"message":"unexpected route"}}`, http.StatusNotFound)
			return
		}
		_ = r.ParseForm()
		gotForm = r.PostForm.Encode()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":1999,"currency":"usd","client_secret":"pi_123_secret_abc"}`))
	})

	c := NewClient("sk_test_123", "usd", backend)
	secret, err := c.CreateIntent(context.Background(), decimal.RequireFromString("19.99"))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if secret != "pi_123_secret_abc" {
		t.Fatalf("secret=%q", secret)
	}
	if !strings.Contains(gotForm, "amount=1999") || !strings.Contains(gotForm, "currency=usd") {
		t.Fatalf("form=%s", gotForm)
	}
}

func TestCreateIntent_ProcessorError(t *testing.T) {
	t.Parallel()

	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Amount must be at least $0.50 usd"}}`))
	})

	c := NewClient("sk_test_123", "usd", backend)
	if _, err := c.CreateIntent(context.Background(), decimal.RequireFromString("0.10")); err == nil {
		t.Fatalf("expected processor error")
	}
}

func TestCreateIntent_Guards(t *testing.T) {
	t.Parallel()

	called := false
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	if _, err := NewClient("", "usd", backend).CreateIntent(context.Background(), decimal.NewFromInt(5)); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err=%v, want ErrNotConfigured", err)
	}
	if _, err := NewClient("sk_test", "usd", backend).CreateIntent(context.Background(), decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err=%v, want ErrInvalidAmount", err)
	}
	if called {
		t.Fatalf("processor must not be called for rejected input")
	}
}
