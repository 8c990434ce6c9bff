package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	Logger  *slog.Logger
	Metrics *Metrics
	// StaticDir, when set, is served under /static/.
	StaticDir string
}

func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(requestLogger(log))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	// innermost, so logging and metrics see the 500 it writes
	r.Use(chiMiddleware.Recoverer)

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Get("/tweets", h.ListTweets)
	r.Post("/tweet", h.CreateTweet)
	r.Delete("/tweet/{id}", h.DeleteTweet)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(r.Context(), w, http.StatusNotFound, "NotFound", "404 - Not Found")
	})

	return r
}
