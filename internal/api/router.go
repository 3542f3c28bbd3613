package api

import (
	"net/http"

	"github.com/filmbox/movie-collection-website/internal/api/handlers"
	"github.com/filmbox/movie-collection-website/internal/api/middleware"
	"github.com/filmbox/movie-collection-website/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.SecurityHeaders)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, services.Token)
	searchHandler := handlers.NewSearchHandler(services.Search)
	collectionHandler := handlers.NewCollectionHandler(services.Collection)

	// Public auth routes
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)

	// Public search routes
	r.Get("/search/movies", searchHandler.Movies)
	r.Get("/search/movies/{id}/credits", searchHandler.Credits)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Token))

		r.Get("/me", authHandler.Me)

		r.Route("/collection_items", func(r chi.Router) {
			r.Get("/", collectionHandler.List)
			r.Post("/", collectionHandler.Create)
			r.Get("/{id}", collectionHandler.Get)
			r.Put("/{id}", collectionHandler.Update)
			r.Patch("/{id}", collectionHandler.Update)
			r.Delete("/{id}", collectionHandler.Destroy)
		})
	})

	return r
}
