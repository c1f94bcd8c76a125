// main.go

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"medishop-server/internal/api"
	"medishop-server/internal/auth"
	"medishop-server/internal/config"
	"medishop-server/internal/payment"
	"medishop-server/internal/store"
)

// @title        MediShop API
// @version      1.0
// @description  Online medicine marketplace: catalog, cart, orders and Stripe payments.
// @BasePath     /
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("mongo connect failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	db := client.Database(cfg.MongoDB)
	slog.Info("connected to mongo", slog.String("db", cfg.MongoDB))

	if err := store.EnsureIndexes(ctx, db); err != nil {
		// existing duplicates block the unique indexes; serve anyway
		slog.Warn("index setup incomplete", slog.String("error", err.Error()))
	}

	if cfg.StripeSecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY not set; payment intents will fail")
	}
	issuer := auth.NewIssuer(cfg.JWTSecret, 24*time.Hour)

	router := api.API(api.Deps{
		Users:      store.NewUserRepo(db),
		Ads:        store.NewAdRepo(db),
		Categories: store.NewCategoryRepo(db),
		Medicines:  store.NewMedicineRepo(db),
		Cart:       store.NewCartRepo(db),
		Orders:     store.NewOrderRepo(db),
		Payments:   payment.NewClient(cfg.StripeSecretKey, cfg.PaymentCurrency, nil),
		Tokens:     issuer,
		Guard:      auth.NewGuard(issuer, cfg.AuthRequired),
	}, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("MediShop server listening", slog.String("addr", srv.Addr), slog.Bool("authRequired", cfg.AuthRequired))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown", slog.String("error", err.Error()))
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		slog.Error("mongo disconnect", slog.String("error", err.Error()))
	}
}
