package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/filmbox/movie-collection-website/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CollectionService struct {
	itemRepo repository.CollectionItemRepository
}

func NewCollectionService(itemRepo repository.CollectionItemRepository) *CollectionService {
	return &CollectionService{itemRepo: itemRepo}
}

// CollectionItemInput is the allow-list of fields a client may set. Pointer
// fields distinguish "absent" from "zero" so partial updates leave stored
// values untouched.
type CollectionItemInput struct {
	TmdbID      *int     `json:"tmdbId"`
	Title       *string  `json:"title"`
	PosterPath  *string  `json:"posterPath"`
	ReleaseDate *string  `json:"releaseDate"`
	VoteAverage *float64 `json:"voteAverage"`
	Overview    *string  `json:"overview"`
}

// List returns the caller's items. Sorting is a presentation concern: the
// store hands back insertion order and the requested key is applied to the
// slice afterwards.
func (s *CollectionService) List(ctx context.Context, ownerID uuid.UUID, sortKey string) ([]*domain.CollectionItem, error) {
	items, err := s.itemRepo.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sortItems(items, sortKey)
	return items, nil
}

func (s *CollectionService) Get(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.CollectionItem, error) {
	return s.getOwned(ctx, ownerID, itemID)
}

func (s *CollectionService) Create(ctx context.Context, ownerID uuid.UUID, input CollectionItemInput) (*domain.CollectionItem, error) {
	v := domain.NewValidationError()
	if input.TmdbID == nil || *input.TmdbID <= 0 {
		v.Add("tmdbId", "can't be blank")
	}
	if input.Title == nil || *input.Title == "" {
		v.Add("title", "can't be blank")
	}
	if v.HasErrors() {
		return nil, v
	}

	item := &domain.CollectionItem{
		ID:        uuid.New(),
		UserID:    ownerID,
		TmdbID:    *input.TmdbID,
		Title:     *input.Title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if input.PosterPath != nil {
		item.PosterPath = *input.PosterPath
	}
	if input.ReleaseDate != nil {
		item.ReleaseDate = *input.ReleaseDate
	}
	if input.VoteAverage != nil {
		item.VoteAverage = *input.VoteAverage
	}
	if input.Overview != nil {
		item.Overview = *input.Overview
	}

	// Duplicates are settled by the (user_id, tmdb_id) unique index, not a
	// lookup beforehand: concurrent saves of the same movie leave one row.
	if err := s.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			v.Add("tmdbId", "has already been taken")
			return nil, v
		}
		return nil, err
	}

	return item, nil
}

func (s *CollectionService) Update(ctx context.Context, ownerID, itemID uuid.UUID, input CollectionItemInput) (*domain.CollectionItem, error) {
	item, err := s.getOwned(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	v := domain.NewValidationError()
	if input.TmdbID != nil && *input.TmdbID <= 0 {
		v.Add("tmdbId", "can't be blank")
	}
	if input.Title != nil && *input.Title == "" {
		v.Add("title", "can't be blank")
	}
	if v.HasErrors() {
		return nil, v
	}

	if input.TmdbID != nil {
		item.TmdbID = *input.TmdbID
	}
	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.PosterPath != nil {
		item.PosterPath = *input.PosterPath
	}
	if input.ReleaseDate != nil {
		item.ReleaseDate = *input.ReleaseDate
	}
	if input.VoteAverage != nil {
		item.VoteAverage = *input.VoteAverage
	}
	if input.Overview != nil {
		item.Overview = *input.Overview
	}
	item.UpdatedAt = time.Now()

	if err := s.itemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			v.Add("tmdbId", "has already been taken")
			return nil, v
		}
		return nil, err
	}

	return item, nil
}

func (s *CollectionService) Destroy(ctx context.Context, ownerID, itemID uuid.UUID) error {
	item, err := s.getOwned(ctx, ownerID, itemID)
	if err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, item.ID)
}

// getOwned fetches an item and checks ownership before anything else.
// Another user's item answers exactly like a missing one, so the response
// never reveals whether the row exists.
func (s *CollectionService) getOwned(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.CollectionItem, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if item.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func sortItems(items []*domain.CollectionItem, key string) {
	switch key {
	case "title":
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
	case "rating":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].VoteAverage > items[j].VoteAverage
		})
	case "year":
		// Release dates are provider-formatted YYYY-MM-DD, so string order
		// is chronological; newest first.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ReleaseDate > items[j].ReleaseDate
		})
	case "recency":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}
