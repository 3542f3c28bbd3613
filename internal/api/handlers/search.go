package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/filmbox/movie-collection-website/internal/service"
	"github.com/filmbox/movie-collection-website/internal/tmdb"
	"github.com/go-chi/chi/v5"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

type SearchResponse struct {
	Results []domain.SearchResult `json:"results"`
}

func (h *SearchHandler) Movies(w http.ResponseWriter, r *http.Request) {
	results, err := h.searchService.SearchMovies(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.respondSearchError(w, err, "Search failed")
		return
	}

	respondJSON(w, http.StatusOK, SearchResponse{Results: results})
}

func (h *SearchHandler) Credits(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	payload, err := h.searchService.MovieCredits(r.Context(), movieID)
	if err != nil {
		h.respondSearchError(w, err, "Failed to fetch credits")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// respondSearchError maps pipeline failures onto the API contract: client
// mistakes are 400, missing configuration is 500, and any provider trouble
// is 502 with the upstream detail kept in the server log.
func (h *SearchHandler) respondSearchError(w http.ResponseWriter, err error, generic string) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		respondValidationError(w, http.StatusBadRequest, vErr)
		return
	}

	if errors.Is(err, domain.ErrNotConfigured) {
		respondError(w, http.StatusInternalServerError, "Server is not configured")
		return
	}

	var pErr *tmdb.Error
	if errors.As(err, &pErr) {
		log.Printf("ERROR [search] provider failure (%s): %v", pErr.Kind, pErr)
		respondError(w, http.StatusBadGateway, generic)
		return
	}

	log.Printf("ERROR [search] unexpected failure: %v", err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
