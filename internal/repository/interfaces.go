package repository

import (
	"context"

	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type CollectionItemRepository interface {
	Create(ctx context.Context, item *domain.CollectionItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CollectionItem, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.CollectionItem, error)
	Update(ctx context.Context, item *domain.CollectionItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User           UserRepository
	CollectionItem CollectionItemRepository
}
