package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/filmbox/movie-collection-website/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// emailPattern is a permissive format check; real validation happens when
// mail bounces. It only rejects obvious garbage.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type SignupInput struct {
	Email                string
	Password             string
	PasswordConfirmation string
}

// Register creates a user after normalizing the email and hashing the
// password. Email uniqueness comes from the database constraint, so
// concurrent signups with the same address cannot both win.
func (s *AuthService) Register(ctx context.Context, input SignupInput) (*domain.User, error) {
	email := NormalizeEmail(input.Email)

	v := domain.NewValidationError()
	if email == "" {
		v.Add("email", "can't be blank")
	} else if !emailPattern.MatchString(email) {
		v.Add("email", "is invalid")
	}
	if input.Password == "" {
		v.Add("password", "can't be blank")
	} else if input.Password != input.PasswordConfirmation {
		v.Add("passwordConfirmation", "doesn't match password")
	}
	if v.HasErrors() {
		return nil, v
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			v.Add("email", "has already been taken")
			return nil, v
		}
		return nil, err
	}

	return user, nil
}

// dummyHash is verified against when the user lookup misses, so login takes
// the same time whether the email exists or not.
var dummyHash, _ = HashPassword("no-such-user-timing-pad")

// Login returns the user only when the email resolves and the password
// verifies. Every failure mode collapses into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			VerifyPassword(password, dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" || !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// NormalizeEmail applies the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
