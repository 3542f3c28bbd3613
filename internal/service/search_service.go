package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/filmbox/movie-collection-website/internal/config"
	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/filmbox/movie-collection-website/internal/tmdb"
)

// MetadataClient is what the pipeline needs from the provider client.
type MetadataClient interface {
	SearchMovies(ctx context.Context, query string) (*tmdb.SearchResponse, error)
	MovieCredits(ctx context.Context, movieID int) (json.RawMessage, error)
}

type SearchService struct {
	client MetadataClient
	cfg    *config.Config
}

func NewSearchService(client MetadataClient, cfg *config.Config) *SearchService {
	return &SearchService{client: client, cfg: cfg}
}

// SearchMovies validates the query, asks the provider, then normalizes,
// filters, and ranks the results. An empty result set is not an error.
func (s *SearchService) SearchMovies(ctx context.Context, rawQuery string) ([]domain.SearchResult, error) {
	query := strings.TrimSpace(rawQuery)

	// Input checks come before any network I/O.
	v := domain.NewValidationError()
	if query == "" {
		v.Add("query", "is required")
		return nil, v
	}
	if utf8.RuneCountInString(query) > s.cfg.SearchMaxQueryLength {
		v.Add("query", "is too long")
		return nil, v
	}

	if s.cfg.TMDBAPIKey == "" {
		return nil, domain.ErrNotConfigured
	}

	resp, err := s.client.SearchMovies(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(resp.Results))
	for _, m := range resp.Results {
		r := normalize(m)
		if r.OriginalLanguage == s.cfg.SearchFilterLanguage || r.Popularity > s.cfg.SearchPopularityThreshold {
			results = append(results, r)
		}
	}

	// Stable sort keeps the provider's order on equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return s.score(results[i]) > s.score(results[j])
	})

	return results, nil
}

// MovieCredits returns the provider's cast/crew payload unmodified.
func (s *SearchService) MovieCredits(ctx context.Context, movieID int) (json.RawMessage, error) {
	if movieID <= 0 {
		v := domain.NewValidationError()
		v.Add("id", "is invalid")
		return nil, v
	}

	if s.cfg.TMDBAPIKey == "" {
		return nil, domain.ErrNotConfigured
	}

	return s.client.MovieCredits(ctx, movieID)
}

func (s *SearchService) score(r domain.SearchResult) float64 {
	return s.cfg.SearchPopularityWeight*r.Popularity + s.cfg.SearchVoteCountWeight*float64(r.VoteCount)
}

func normalize(m tmdb.Movie) domain.SearchResult {
	return domain.SearchResult{
		TmdbID:           m.ID,
		Title:            m.Title,
		Overview:         m.Overview,
		PosterPath:       m.PosterPath,
		ReleaseDate:      m.ReleaseDate,
		VoteAverage:      float64(m.VoteAverage),
		VoteCount:        int(m.VoteCount),
		Popularity:       float64(m.Popularity),
		OriginalLanguage: m.OriginalLanguage,
	}
}
