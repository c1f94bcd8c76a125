package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only acceptable while route guards are off.
const DefaultJWTSecret = "SECRET"

var ErrWeakJWTSecret = errors.New("AUTH_REQUIRED needs JWT_SECRET set to a non-default value")

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	StripeSecretKey string
	PaymentCurrency string
	JWTSecret       string
	AuthRequired    bool
	CORSOrigins     []string
	GinMode         string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

// mongoURI prefers MONGO_URI and falls back to the Atlas cluster URI built
// from DB_USER and DB_PASS.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
	if user == "" {
		return "mongodb://localhost:27017"
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@cluster0.f1wcz6a.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0", user, pass)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Port:            getenv("PORT", "5000"),
		MongoURI:        mongoURI(),
		MongoDB:         getenv("MONGO_DB", "MediShopDB"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		PaymentCurrency: strings.ToLower(getenv("PAYMENT_CURRENCY", "usd")),
		JWTSecret:       getenv("JWT_SECRET", DefaultJWTSecret),
		AuthRequired:    getbool("AUTH_REQUIRED", false),
		CORSOrigins:     splitList(getenv("CORS_ORIGINS", "*")),
		GinMode:         getenv("GIN_MODE", "debug"),
	}
	slog.Info("config loaded",
		slog.String("port", cfg.Port),
		slog.String("mongo_db", cfg.MongoDB),
		slog.String("currency", cfg.PaymentCurrency),
		slog.Bool("auth_required", cfg.AuthRequired),
		slog.Any("cors_origins", cfg.CORSOrigins),
	)
	return cfg
}

// Validate rejects settings the server must not start with.
func (c Config) Validate() error {
	if c.AuthRequired && (c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret) {
		return ErrWeakJWTSecret
	}
	return nil
}
