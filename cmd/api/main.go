package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/MrJamesThe3rd/ascend/internal/analytics"
	"github.com/MrJamesThe3rd/ascend/internal/category"
	categoryStore "github.com/MrJamesThe3rd/ascend/internal/category/store"
	"github.com/MrJamesThe3rd/ascend/internal/config"
	"github.com/MrJamesThe3rd/ascend/internal/database"
	"github.com/MrJamesThe3rd/ascend/internal/export"
	"github.com/MrJamesThe3rd/ascend/internal/goal"
	goalStore "github.com/MrJamesThe3rd/ascend/internal/goal/store"
	"github.com/MrJamesThe3rd/ascend/internal/habit"
	habitStore "github.com/MrJamesThe3rd/ascend/internal/habit/store"
	ascendHttp "github.com/MrJamesThe3rd/ascend/internal/http"
	analyticsHandler "github.com/MrJamesThe3rd/ascend/internal/http/analytics"
	categoryHandler "github.com/MrJamesThe3rd/ascend/internal/http/category"
	exportHandler "github.com/MrJamesThe3rd/ascend/internal/http/export"
	goalHandler "github.com/MrJamesThe3rd/ascend/internal/http/goal"
	habitHandler "github.com/MrJamesThe3rd/ascend/internal/http/habit"
	insightHandler "github.com/MrJamesThe3rd/ascend/internal/http/insight"
	journalHandler "github.com/MrJamesThe3rd/ascend/internal/http/journal"
	txHandler "github.com/MrJamesThe3rd/ascend/internal/http/transaction"
	userHandler "github.com/MrJamesThe3rd/ascend/internal/http/user"
	"github.com/MrJamesThe3rd/ascend/internal/identity"
	"github.com/MrJamesThe3rd/ascend/internal/importer"
	"github.com/MrJamesThe3rd/ascend/internal/insight"
	insightStore "github.com/MrJamesThe3rd/ascend/internal/insight/store"
	"github.com/MrJamesThe3rd/ascend/internal/journal"
	journalStore "github.com/MrJamesThe3rd/ascend/internal/journal/store"
	"github.com/MrJamesThe3rd/ascend/internal/logger"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
	txStore "github.com/MrJamesThe3rd/ascend/internal/transaction/store"
	"github.com/MrJamesThe3rd/ascend/internal/user"
	userStore "github.com/MrJamesThe3rd/ascend/internal/user/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.IsDevelopment(),
		SentryDSN:   cfg.Log.SentryDSN,
		Environment: cfg.App.Env,
	})
	defer sentry.Flush(2 * time.Second)

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := database.New(ctx, cfg.ConnectionString(), database.PoolOptions{
		MaxConns:        cfg.DB.MaxConns,
		MinConns:        cfg.DB.MinConns,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
		MaxConnIdleTime: cfg.DB.MaxConnIdleTime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if cfg.DB.MigrateOnStart {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	var generator insight.Generator = insight.Fallback{}
	if cfg.AI.APIKey != "" {
		generator = insight.NewAnthropicGenerator(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.MaxTokens, cfg.AI.Timeout)
	} else {
		slog.Warn("AI_API_KEY not set, insights will use fallback content")
	}

	var (
		userService        = user.NewService(userStore.New(db))
		goalService        = goal.NewService(goalStore.New(db))
		habitService       = habit.NewService(habitStore.New(db))
		journalService     = journal.NewService(journalStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		importService      = importer.NewService(transactionService, categoryService)
		analyticsService   = analytics.NewService(habitService, goalService, transactionService, loc)
		insightService     = insight.NewService(insightStore.New(db), analyticsService, journalService, generator, loc)
	)

	handlers := ascendHttp.Handlers{
		Goals:        goalHandler.NewHandler(goalService),
		Habits:       habitHandler.NewHandler(habitService),
		Journal:      journalHandler.NewHandler(journalService),
		Transactions: txHandler.NewHandler(transactionService, importService),
		Categories:   categoryHandler.NewHandler(categoryService),
		Insights:     insightHandler.NewHandler(insightService),
		Analytics:    analyticsHandler.NewHandler(analyticsService),
		Exports:      exportHandler.NewHandler(export.NewService(transactionService)),
		Users:        userHandler.NewHandler(userService),
	}

	auth := identity.Middleware(
		identity.NewVerifier(cfg.Auth.Secret, cfg.Auth.Issuer),
		userService,
		identity.Options{CookieName: cfg.Auth.CookieName, LoginURL: cfg.Auth.LoginURL},
	)

	router := ascendHttp.New(handlers, ascendHttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Auth:           auth,
		DB:             db,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "port", srv.Addr, "env", cfg.App.Env, "timezone", loc.String())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "grace", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
