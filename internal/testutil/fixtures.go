package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/filmbox/movie-collection-website/internal/service"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hash, err := service.HashPassword(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        service.NormalizeEmail(b.email),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// BuildAndAuthenticate creates a user via the API and returns it with a
// session token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	resp := PostJSON(t, ts.URL("/login"), "", map[string]string{
		"email":    user.Email,
		"password": password,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	var auth AuthResponse
	AssertJSONResponse(t, resp, &auth)

	return user, auth.Token
}

// CollectionItemBuilder creates saved movies for a user
type CollectionItemBuilder struct {
	userID uuid.UUID
	tmdbID int
	title  string
}

func NewCollectionItemBuilder(userID uuid.UUID) *CollectionItemBuilder {
	return &CollectionItemBuilder{
		userID: userID,
		tmdbID: 603,
		title:  "The Matrix",
	}
}

func (b *CollectionItemBuilder) WithTmdbID(id int) *CollectionItemBuilder {
	b.tmdbID = id
	return b
}

func (b *CollectionItemBuilder) WithTitle(title string) *CollectionItemBuilder {
	b.title = title
	return b
}

func (b *CollectionItemBuilder) Build(t *testing.T, db *gorm.DB) *domain.CollectionItem {
	t.Helper()

	item := &domain.CollectionItem{
		ID:        uuid.New(),
		UserID:    b.userID,
		TmdbID:    b.tmdbID,
		Title:     b.title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create collection item: %v", err)
	}

	return item
}

// PostJSON sends a JSON POST request, attaching the bearer token when set
func PostJSON(t *testing.T, url, token string, body interface{}) *http.Response {
	t.Helper()
	return doJSON(t, http.MethodPost, url, token, body)
}

// PutJSON sends a JSON PUT request
func PutJSON(t *testing.T, url, token string, body interface{}) *http.Response {
	t.Helper()
	return doJSON(t, http.MethodPut, url, token, body)
}

// GetJSON sends a GET request with an optional bearer token
func GetJSON(t *testing.T, url, token string) *http.Response {
	t.Helper()
	return doJSON(t, http.MethodGet, url, token, nil)
}

// Delete sends a DELETE request with an optional bearer token
func Delete(t *testing.T, url, token string) *http.Response {
	t.Helper()
	return doJSON(t, http.MethodDelete, url, token, nil)
}

func doJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		payload = bytes.NewBuffer(data)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
