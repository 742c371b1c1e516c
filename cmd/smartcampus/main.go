package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/clock"

	"github.com/ericfisherdev/smartcampus/internal/adapter/driven/quotes"
	sqliteadapter "github.com/ericfisherdev/smartcampus/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/smartcampus/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/smartcampus/internal/adapter/driving/web"
	"github.com/ericfisherdev/smartcampus/internal/application"
	"github.com/ericfisherdev/smartcampus/internal/config"
	"github.com/ericfisherdev/smartcampus/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"login_delay", cfg.LoginDelay,
		"quote_interval", cfg.QuoteInterval,
		"journal_enabled", cfg.JournalEnabled(),
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Load the quote ticker entries.
	quoteList, err := quotes.NewSource(cfg.QuotesPath).Load()
	if err != nil {
		return err
	}
	slog.Info("quotes loaded", "count", len(quoteList), "path", cfg.QuotesPath)

	// 4. Open the attempt journal when a database path is configured.
	var journal driven.AttemptLog
	if cfg.JournalEnabled() {
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		slog.Info("database opened", "path", db.Path())

		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			return err
		}
		slog.Info("migrations complete")

		journal = sqliteadapter.NewAttemptRepo(db)
	} else {
		slog.Info("no database configured, login attempts are logged only")
	}

	// 5. Create and start the routing shell and the quote rotator.
	shell := application.NewShell(clock.WallClock, cfg.VisitorTTL)
	go shell.Start(ctx)

	rotator := application.NewQuoteRotator(quoteList, clock.WallClock, cfg.QuoteInterval)
	go rotator.Start(ctx)

	// 6. Create application services.
	loginSvc := application.NewLoginService(clock.WallClock, cfg.LoginDelay, journal, slog.Default())
	healthSvc := application.NewHealthService(journal, rotator, shell)

	// 7. Create HTTP handler and register API routes.
	apiHandler := httphandler.NewHandler(healthSvc, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	// 8. Create web handler and register portal routes.
	webHandler := webhandler.NewHandler(shell, loginSvc, rotator, journal, clock.WallClock, webhandler.Options{
		ShowLoginErrors: cfg.ShowLoginErrors,
		SecureCookies:   cfg.SecureCookies,
	}, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		// Requests inherit ctx so in-flight login submissions are abandoned on shutdown.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	slog.Info("smartcampus started", "listen_addr", cfg.ListenAddr)

	// 9. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 10. Graceful shutdown with 10s timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
