package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/trivia"
)

// Pinger reports data-store reachability; satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHTTPServer wires the trivia API routes plus health and metrics
// endpoints behind the CORS, access-log, and metrics middleware.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, db Pinger, handlers *trivia.HTTPHandlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: newRouter(cfg, logger, db, handlers),
	}
}

func newRouter(cfg *config.App, logger zerolog.Logger, db Pinger, handlers *trivia.HTTPHandlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				logger.Error().Err(err).Msg("database ping failed")
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`{"status":"degraded"}`))
				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	// API routes. Method dispatch happens inside the handlers so that
	// method mismatches produce the JSON 405 envelope instead of the
	// mux default. The root handler doubles as the JSON 404 for paths
	// no other pattern claims.
	mux.HandleFunc("/", handlers.Index)
	mux.HandleFunc("/categories", handlers.Categories)
	mux.HandleFunc("/categories/{id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("/questions", handlers.Questions)
	mux.HandleFunc("/questions/{id}", handlers.QuestionByID)
	mux.HandleFunc("/quizzes", handlers.PlayQuiz)

	var handler http.Handler = mux
	handler = metricsMiddleware(handler)
	handler = accessLogMiddleware(logger, handler)
	handler = corsMiddleware(cfg.CORS, handler)
	return handler
}
