package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AdrianTrill/travel-content-hub/internal/api"
	apiMiddleware "github.com/AdrianTrill/travel-content-hub/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	contentHandler := api.NewContentHandler(app.contentService)
	imageHandler := api.NewImageHandler(app.orchestrator)
	historyHandler := api.NewHistoryHandler(app.contentStore)

	r.Route("/api/v1", func(r chi.Router) {
		// Generation endpoints
		r.Post("/generate-content", contentHandler.GenerateContent)
		r.Post("/generate-custom-content", contentHandler.GenerateCustomContent)
		r.Post("/search-places", contentHandler.SearchPlaces)
		r.Post("/generate-image", imageHandler.GenerateImage)

		// Published content endpoints
		r.Post("/content", historyHandler.PublishContent)
		r.Get("/content", historyHandler.ListContent)
		r.Post("/content/{id}/view", historyHandler.RecordView)
		r.Post("/content/{id}/share", historyHandler.RecordShare)
		r.Delete("/content/{id}", historyHandler.DeleteContent)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
