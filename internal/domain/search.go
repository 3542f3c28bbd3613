package domain

// SearchResult is the normalized projection of a provider movie record
// returned by the search pipeline. It is never persisted.
type SearchResult struct {
	TmdbID           int     `json:"tmdbId"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"posterPath"`
	ReleaseDate      string  `json:"releaseDate"`
	VoteAverage      float64 `json:"voteAverage"`
	VoteCount        int     `json:"voteCount"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"originalLanguage"`
}
