package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/filmbox/movie-collection-website/internal/api/middleware"
	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/filmbox/movie-collection-website/internal/service"
)

type AuthHandler struct {
	authService  *service.AuthService
	tokenService *service.TokenService
}

func NewAuthHandler(authService *service.AuthService, tokenService *service.TokenService) *AuthHandler {
	return &AuthHandler{authService: authService, tokenService: tokenService}
}

type SignupRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), service.SignupInput{
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			respondValidationError(w, http.StatusUnprocessableEntity, vErr)
			return
		}
		log.Printf("ERROR [auth.Signup] registration failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			respondError(w, http.StatusInternalServerError, "Server is not configured")
			return
		}
		log.Printf("ERROR [auth.Signup] token issue failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{
		Token: token,
		User:  UserResponse{ID: user.ID.String(), Email: user.Email},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Deliberately the same answer for unknown email and wrong
			// password.
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("ERROR [auth.Login] login failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			respondError(w, http.StatusInternalServerError, "Server is not configured")
			return
		}
		log.Printf("ERROR [auth.Login] token issue failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{
		Token: token,
		User:  UserResponse{ID: user.ID.String(), Email: user.Email},
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		// A valid token for a since-deleted user is unauthenticated, not 404.
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		log.Printf("ERROR [auth.Me] user lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]UserResponse{
		"user": {ID: user.ID.String(), Email: user.Email},
	})
}
