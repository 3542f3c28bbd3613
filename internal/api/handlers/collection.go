package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/filmbox/movie-collection-website/internal/api/middleware"
	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/filmbox/movie-collection-website/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CollectionHandler struct {
	collectionService *service.CollectionService
}

func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.collectionService.List(r.Context(), userID, r.URL.Query().Get("sort"))
	if err != nil {
		log.Printf("ERROR [collection.List] failed to list items: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	item, err := h.collectionService.Get(r.Context(), userID, itemID)
	if err != nil {
		h.respondCollectionError(w, err, "collection.Get")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input service.CollectionItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.collectionService.Create(r.Context(), userID, input)
	if err != nil {
		h.respondCollectionError(w, err, "collection.Create")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	var input service.CollectionItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.collectionService.Update(r.Context(), userID, itemID, input)
	if err != nil {
		h.respondCollectionError(w, err, "collection.Update")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func (h *CollectionHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	if err := h.collectionService.Destroy(r.Context(), userID, itemID); err != nil {
		h.respondCollectionError(w, err, "collection.Destroy")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CollectionHandler) respondCollectionError(w http.ResponseWriter, err error, op string) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		respondValidationError(w, http.StatusUnprocessableEntity, vErr)
		return
	}

	// Another user's item is indistinguishable from a missing one.
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	log.Printf("ERROR [%s] %v", op, err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
