package catalog

import (
	"context"
	"net/url"

	"github.com/reelistapp/reelist-server/internal/domain"
)

func searchQuery(query string, page int) url.Values {
	q := pageQuery(page)
	q.Set("query", query)
	return q
}

// SearchMovies searches movies by free text.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) Result[domain.Page[domain.Title]] {
	return fetch[domain.Page[domain.Title]](ctx, c, "/search/movie", searchQuery(query, page))
}

// SearchShows searches shows by free text.
func (c *Client) SearchShows(ctx context.Context, query string, page int) Result[domain.Page[domain.Title]] {
	return fetch[domain.Page[domain.Title]](ctx, c, "/search/tv", searchQuery(query, page))
}

// SearchMulti searches movies, shows, and people in one query. Each result
// carries a media_type tag; use FilterTitles to keep only movies and shows.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) Result[domain.Page[domain.Title]] {
	return fetch[domain.Page[domain.Title]](ctx, c, "/search/multi", searchQuery(query, page))
}

// FilterTitles drops person and unknown entries from a multi-search page,
// keeping the page metadata intact.
func FilterTitles(page domain.Page[domain.Title]) domain.Page[domain.Title] {
	kept := make([]domain.Title, 0, len(page.Results))
	for _, t := range page.Results {
		if t.MediaType.Valid() {
			kept = append(kept, t)
		}
	}
	page.Results = kept
	return page
}
