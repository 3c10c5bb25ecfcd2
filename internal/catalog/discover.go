package catalog

import (
	"context"
	"strconv"

	"github.com/reelistapp/reelist-server/internal/domain"
)

// DiscoverFilter narrows a discover query. Zero-valued fields are omitted
// from the request entirely, so the upstream applies its own defaults.
type DiscoverFilter struct {
	// SortBy is a catalog sort key such as popularity.desc.
	SortBy string `json:"sort_by,omitempty" validate:"omitempty,oneof=popularity.desc popularity.asc vote_average.desc vote_average.asc release_date.desc release_date.asc"`
	// WithGenres is a comma-separated genre id list.
	WithGenres string `json:"with_genres,omitempty" validate:"omitempty,max=64"`
	// Year filters by release year (movies) or first air year (shows).
	Year int `json:"year,omitempty" validate:"omitempty,gte=1880,lte=2100"`
	// MinVote is the minimum average rating on the 0-10 scale.
	MinVote float64 `json:"min_vote,omitempty" validate:"omitempty,gte=0,lte=10"`
}

// Discover fetches one page of titles matching the filter.
func (c *Client) Discover(ctx context.Context, kind domain.MediaKind, filter DiscoverFilter, page int) Result[domain.Page[domain.Title]] {
	query := pageQuery(page)
	if filter.SortBy != "" {
		query.Set("sort_by", filter.SortBy)
	}
	if filter.WithGenres != "" {
		query.Set("with_genres", filter.WithGenres)
	}
	if filter.Year > 0 {
		// Movies and shows name the year filter differently.
		if kind == domain.KindShow {
			query.Set("first_air_date_year", strconv.Itoa(filter.Year))
		} else {
			query.Set("year", strconv.Itoa(filter.Year))
		}
	}
	if filter.MinVote > 0 {
		query.Set("vote_average.gte", strconv.FormatFloat(filter.MinVote, 'f', -1, 64))
	}
	return fetch[domain.Page[domain.Title]](ctx, c, "/discover/"+string(kind), query)
}
