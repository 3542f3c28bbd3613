package postgres

import (
	"context"

	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type collectionItemRepository struct {
	db *gorm.DB
}

func NewCollectionItemRepository(db *gorm.DB) *collectionItemRepository {
	return &collectionItemRepository{db: db}
}

func (r *collectionItemRepository) Create(ctx context.Context, item *domain.CollectionItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *collectionItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CollectionItem, error) {
	var item domain.CollectionItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *collectionItemRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.CollectionItem, error) {
	// Non-nil even when the user has no rows, so the API renders [] and
	// never null.
	items := make([]*domain.CollectionItem, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *collectionItemRepository) Update(ctx context.Context, item *domain.CollectionItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *collectionItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.CollectionItem{}, "id = ?", id).Error
}
