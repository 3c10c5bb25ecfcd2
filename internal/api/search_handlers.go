package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/reelistapp/reelist-server/internal/catalog"
	"github.com/reelistapp/reelist-server/internal/domain"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchTitles",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search titles",
		Description: "Free-text search across movies, shows, or both. Multi search drops people from the results.",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// SearchInput carries the search query.
type SearchInput struct {
	Query string `query:"query" required:"true" minLength:"1" doc:"Free-text search query"`
	Kind  string `query:"kind" enum:"movie,tv,multi" required:"false" doc:"Search scope, defaults to multi"`
	Page  int    `query:"page" minimum:"1" required:"false" doc:"1-based page number"`
}

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*TitlePageOutput, error) {
	var result catalog.Result[domain.Page[domain.Title]]
	switch input.Kind {
	case "movie":
		result = s.catalog.SearchMovies(ctx, input.Query, input.Page)
	case "tv":
		result = s.catalog.SearchShows(ctx, input.Query, input.Page)
	default:
		result = s.catalog.SearchMulti(ctx, input.Query, input.Page)
	}

	page, err := unwrap(result)
	if err != nil {
		return nil, err
	}
	if input.Kind == "" || input.Kind == "multi" {
		page = catalog.FilterTitles(page)
	}
	return &TitlePageOutput{Body: page}, nil
}
