package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/ascend/internal/http/analytics"
	"github.com/MrJamesThe3rd/ascend/internal/http/category"
	"github.com/MrJamesThe3rd/ascend/internal/http/export"
	"github.com/MrJamesThe3rd/ascend/internal/http/goal"
	"github.com/MrJamesThe3rd/ascend/internal/http/habit"
	"github.com/MrJamesThe3rd/ascend/internal/http/insight"
	"github.com/MrJamesThe3rd/ascend/internal/http/journal"
	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/http/transaction"
	"github.com/MrJamesThe3rd/ascend/internal/http/user"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Goals        *goal.Handler
	Habits       *habit.Handler
	Journal      *journal.Handler
	Transactions *transaction.Handler
	Categories   *category.Handler
	Insights     *insight.Handler
	Analytics    *analytics.Handler
	Exports      *export.Handler
	Users        *user.Handler
}

type Options struct {
	AllowedOrigins []string
	// Auth guards everything under /api.
	Auth func(http.Handler) http.Handler
	DB   Pinger
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Login-Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", health(opts.DB))

	router.Route("/api", func(r chi.Router) {
		r.Use(opts.Auth)

		r.Get("/auth/user", h.Users.Current)
		r.Get("/dashboard/stats", h.Analytics.Stats)
		r.Get("/analytics", h.Analytics.Report)
		r.Route("/exports", h.Exports.Routes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/goals", h.Goals.Routes)
			r.Route("/habits", h.Habits.Routes)
			r.Route("/habit-completions", h.Habits.CompletionRoutes)
			r.Route("/journal-entries", h.Journal.Routes)
			r.Route("/category-rules", h.Categories.Routes)
			r.Route("/ai-insights", h.Insights.Routes)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json", "multipart/form-data"))
			h.Transactions.Routes(r)
		})
	})

	return router
}

func health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "health check failed", "error", err)
			respond.Message(w, http.StatusServiceUnavailable, "Database unavailable")

			return
		}

		respond.Message(w, http.StatusOK, "ok")
	}
}
