package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/keygen"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/random"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/strength"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	words, err := keygen.OpenCorpus(cfg.WordlistPath)
	if err != nil {
		slog.Error("loading word list failed", "path", cfg.WordlistPath, "error", err)
		os.Exit(1)
	}

	src := random.Locked(random.NewCryptoSource())
	passwords, err := keygen.NewPasswordEngine(src, keygen.WithMaxAttempts(cfg.MaxAttempts))
	if err != nil {
		slog.Error("creating password engine failed", "error", err)
		os.Exit(1)
	}
	passphrases := keygen.NewPassphraseEngine(src, words)

	genService := service.NewGeneratorService(
		passwords,
		passphrases,
		crypto.NewHasher(crypto.DefaultHashParams()),
		strength.NewZxcvbnScorer(),
	)
	genHandler := handler.NewGeneratorHandler(genService)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/v1/options", genHandler.HandleOptions)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Post("/api/v1/password", genHandler.HandlePassword)
		r.Post("/api/v1/passphrase", genHandler.HandlePassphrase)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	// Preset routes need the database.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, preset routes disabled", "error", err)
	} else {
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := repository.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			slog.Error("preparing database failed", "error", err)
			os.Exit(1)
		}

		presetService := service.NewPresetService(repository.NewPresetRepository(db), genService)
		presetHandler := handler.NewPresetHandler(presetService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.ClientAuth(cfg.JWTSecret))
			r.Use(limiter.Handler)

			r.Get("/api/v1/presets", presetHandler.HandleList)
			r.Post("/api/v1/presets", presetHandler.HandleCreate)
			r.Get("/api/v1/presets/{id}", presetHandler.HandleGet)
			r.Delete("/api/v1/presets/{id}", presetHandler.HandleDelete)
			r.Post("/api/v1/presets/{id}/generate", presetHandler.HandleGenerate)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "words", words.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
