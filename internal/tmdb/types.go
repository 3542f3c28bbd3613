package tmdb

import (
	"encoding/json"
	"strconv"
)

// SearchResponse is the provider's paged search payload.
type SearchResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Movie is a raw provider record. Numeric fields use lenient types because
// the provider has historically been loose about them; a missing or garbled
// number decodes as zero rather than failing the whole page.
type Movie struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Overview         string   `json:"overview"`
	PosterPath       string   `json:"poster_path"`
	ReleaseDate      string   `json:"release_date"`
	OriginalLanguage string   `json:"original_language"`
	VoteAverage      LaxFloat `json:"vote_average"`
	VoteCount        LaxInt   `json:"vote_count"`
	Popularity       LaxFloat `json:"popularity"`
}

// LaxFloat decodes JSON numbers, numeric strings, and null; anything else
// collapses to zero.
type LaxFloat float64

func (f *LaxFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = LaxFloat(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(str, 64); err == nil {
			*f = LaxFloat(parsed)
		}
	}
	return nil
}

// LaxInt is LaxFloat for integer fields.
type LaxInt int

func (i *LaxInt) UnmarshalJSON(data []byte) error {
	var f LaxFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = LaxInt(f)
	return nil
}
