package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rowan/character-forge/internal/api/handlers"
	"github.com/rowan/character-forge/internal/api/middleware"
	"github.com/rowan/character-forge/internal/service"
)

func NewRouter(services *service.Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	characterHandler := handlers.NewCharacterHandler(services.Character, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/characters", func(r chi.Router) {
			r.Post("/generate", characterHandler.Generate)
			r.Get("/", characterHandler.List)
			r.Get("/count", characterHandler.Count)
			r.Post("/cache/clear", characterHandler.ClearCache)
			r.Get("/{id}", characterHandler.Get)
			r.Patch("/{id}", characterHandler.Update)
			r.Delete("/{id}", characterHandler.Delete)
			r.Get("/{id}/export", characterHandler.Export)
		})
	})

	return r
}
