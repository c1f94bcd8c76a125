package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "MONGO_URI", "DB_USER", "DB_PASS", "MONGO_DB", "PAYMENT_CURRENCY", "AUTH_REQUIRED", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("port=%q, want 5000", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Fatalf("mongo uri=%q", cfg.MongoURI)
	}
	if cfg.MongoDB != "MediShopDB" {
		t.Fatalf("mongo db=%q", cfg.MongoDB)
	}
	if cfg.PaymentCurrency != "usd" {
		t.Fatalf("currency=%q", cfg.PaymentCurrency)
	}
	if cfg.AuthRequired {
		t.Fatalf("auth should be off by default")
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Fatalf("origins=%v", cfg.CORSOrigins)
	}
}

func TestLoad_AtlasURIFromCredentials(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_USER", "medi")
	t.Setenv("DB_PASS", "s3cret")

	cfg := Load()
	if !strings.HasPrefix(cfg.MongoURI, "mongodb+srv://medi:s3cret@") {
		t.Fatalf("mongo uri=%q", cfg.MongoURI)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PAYMENT_CURRENCY", "BDT")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("CORS_ORIGINS", "https://medishop.app, https://admin.medishop.app ,")

	cfg := Load()
	if cfg.Port != "8080" || cfg.MongoURI != "mongodb://db:27017" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.PaymentCurrency != "bdt" {
		t.Fatalf("currency=%q, want lowercased", cfg.PaymentCurrency)
	}
	if !cfg.AuthRequired {
		t.Fatalf("auth flag not parsed")
	}
	want := []string{"https://medishop.app", "https://admin.medishop.app"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Fatalf("origins=%v, want %v", cfg.CORSOrigins, want)
	}
}

func TestValidate_JWTSecretWithGuards(t *testing.T) {
	cases := []struct {
		name    string
		auth    string
		secret  string
		wantErr bool
	}{
		{"guards off, default secret", "false", "", false},
		{"guards on, default secret", "true", "", true},
		{"guards on, literal default", "true", DefaultJWTSecret, true},
		{"guards on, real secret", "true", "k3y-from-vault", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("AUTH_REQUIRED", tc.auth)
			t.Setenv("JWT_SECRET", tc.secret)

			err := Load().Validate()
			if tc.wantErr != errors.Is(err, ErrWeakJWTSecret) {
				t.Fatalf("err=%v, wantErr=%v", err, tc.wantErr)
			}
		})
	}
}
