package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/reelistapp/reelist-server/internal/catalog"
	"github.com/reelistapp/reelist-server/internal/domain"
	domainerrors "github.com/reelistapp/reelist-server/internal/errors"
)

func (s *Server) registerBrowseRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "browseCategory",
		Method:      http.MethodGet,
		Path:        "/api/v1/browse/{kind}/{category}",
		Summary:     "Browse a category",
		Description: "Returns one page of a catalog list such as popular or top_rated",
		Tags:        []string{"Browse"},
	}, s.handleBrowseCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTrending",
		Method:      http.MethodGet,
		Path:        "/api/v1/trending/{kind}/{window}",
		Summary:     "Trending titles",
		Description: "Returns trending titles for the day or week window",
		Tags:        []string{"Browse"},
	}, s.handleTrending)

	huma.Register(s.api, huma.Operation{
		OperationID: "listGenres",
		Method:      http.MethodGet,
		Path:        "/api/v1/genres/{kind}",
		Summary:     "List genres",
		Description: "Returns the catalog's genre id/name list for the media kind",
		Tags:        []string{"Browse"},
	}, s.handleListGenres)

	huma.Register(s.api, huma.Operation{
		OperationID: "discoverTitles",
		Method:      http.MethodGet,
		Path:        "/api/v1/discover/{kind}",
		Summary:     "Discover titles",
		Description: "Returns titles matching the optional sort, genre, year, and rating filters",
		Tags:        []string{"Browse"},
	}, s.handleDiscover)
}

// TitlePageOutput wraps one page of titles for Huma.
type TitlePageOutput struct {
	Body domain.Page[domain.Title]
}

// BrowseCategoryInput identifies a catalog list.
type BrowseCategoryInput struct {
	Kind     string `path:"kind" enum:"movie,tv" doc:"Media kind"`
	Category string `path:"category" doc:"Catalog list name, e.g. popular or top_rated"`
	Page     int    `query:"page" minimum:"1" required:"false" doc:"1-based page number"`
}

func (s *Server) handleBrowseCategory(ctx context.Context, input *BrowseCategoryInput) (*TitlePageOutput, error) {
	kind := kindOf(input.Kind)
	if !catalog.ValidCategory(kind, input.Category) {
		return nil, domainerrors.Validationf("unknown %s category: %s", input.Kind, input.Category)
	}

	var result catalog.Result[domain.Page[domain.Title]]
	if kind == domain.KindMovie {
		result = s.catalog.MovieCategory(ctx, input.Category, input.Page)
	} else {
		result = s.catalog.ShowCategory(ctx, input.Category, input.Page)
	}

	page, err := unwrap(result)
	if err != nil {
		return nil, err
	}
	return &TitlePageOutput{Body: page}, nil
}

// TrendingInput identifies a trending window.
type TrendingInput struct {
	Kind   string `path:"kind" enum:"movie,tv" doc:"Media kind"`
	Window string `path:"window" enum:"day,week" doc:"Trending window"`
	Page   int    `query:"page" minimum:"1" required:"false" doc:"1-based page number"`
}

func (s *Server) handleTrending(ctx context.Context, input *TrendingInput) (*TitlePageOutput, error) {
	result := s.catalog.Trending(ctx, kindOf(input.Kind), domain.TrendWindow(input.Window), input.Page)
	page, err := unwrap(result)
	if err != nil {
		return nil, err
	}
	return &TitlePageOutput{Body: page}, nil
}

// KindInput selects a media kind.
type KindInput struct {
	Kind string `path:"kind" enum:"movie,tv" doc:"Media kind"`
}

// GenresResponse contains the genre list.
type GenresResponse struct {
	Genres []domain.Genre `json:"genres"`
}

// GenresOutput wraps the genre list for Huma.
type GenresOutput struct {
	Body GenresResponse
}

func (s *Server) handleListGenres(ctx context.Context, input *KindInput) (*GenresOutput, error) {
	var result catalog.Result[[]domain.Genre]
	if kindOf(input.Kind) == domain.KindMovie {
		result = s.catalog.MovieGenres(ctx)
	} else {
		result = s.catalog.ShowGenres(ctx)
	}

	genres, err := unwrap(result)
	if err != nil {
		return nil, err
	}
	return &GenresOutput{Body: GenresResponse{Genres: genres}}, nil
}

// DiscoverInput carries the optional discover filters.
type DiscoverInput struct {
	Kind       string  `path:"kind" enum:"movie,tv" doc:"Media kind"`
	SortBy     string  `query:"sort_by" required:"false" doc:"Catalog sort key, e.g. popularity.desc"`
	WithGenres string  `query:"with_genres" required:"false" doc:"Comma-separated genre ids"`
	Year       int     `query:"year" required:"false" doc:"Release year (movies) or first air year (shows)"`
	MinVote    float64 `query:"min_vote" required:"false" doc:"Minimum average rating, 0-10"`
	Page       int     `query:"page" minimum:"1" required:"false" doc:"1-based page number"`
}

func (s *Server) handleDiscover(ctx context.Context, input *DiscoverInput) (*TitlePageOutput, error) {
	filter := catalog.DiscoverFilter{
		SortBy:     input.SortBy,
		WithGenres: input.WithGenres,
		Year:       input.Year,
		MinVote:    input.MinVote,
	}
	if err := s.validator.Validate(filter); err != nil {
		return nil, err
	}

	result := s.catalog.Discover(ctx, kindOf(input.Kind), filter, input.Page)
	page, err := unwrap(result)
	if err != nil {
		return nil, err
	}
	return &TitlePageOutput{Body: page}, nil
}
