package service

import (
	"github.com/filmbox/movie-collection-website/internal/config"
	"github.com/filmbox/movie-collection-website/internal/repository"
)

type Services struct {
	Auth       *AuthService
	Token      *TokenService
	Collection *CollectionService
	Search     *SearchService
}

func NewServices(repos *repository.Repositories, tmdbClient MetadataClient, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User),
		Token:      NewTokenService(cfg),
		Collection: NewCollectionService(repos.CollectionItem),
		Search:     NewSearchService(tmdbClient, cfg),
	}
}
