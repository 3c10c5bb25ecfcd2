package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/reelistapp/reelist-server/internal/catalog"
	"github.com/reelistapp/reelist-server/internal/domain"
)

func (s *Server) registerTitleRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getMovieDetails",
		Method:      http.MethodGet,
		Path:        "/api/v1/titles/movie/{id}",
		Summary:     "Movie details",
		Description: "Returns the full movie record with videos and credits embedded",
		Tags:        []string{"Titles"},
	}, s.handleMovieDetails)

	huma.Register(s.api, huma.Operation{
		OperationID: "getShowDetails",
		Method:      http.MethodGet,
		Path:        "/api/v1/titles/tv/{id}",
		Summary:     "Show details",
		Description: "Returns the full show record with videos and credits embedded",
		Tags:        []string{"Titles"},
	}, s.handleShowDetails)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTitleVideos",
		Method:      http.MethodGet,
		Path:        "/api/v1/titles/{kind}/{id}/videos",
		Summary:     "Title videos",
		Description: "Returns the promotional videos for a title, optionally YouTube only",
		Tags:        []string{"Titles"},
	}, s.handleTitleVideos)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTitleCredits",
		Method:      http.MethodGet,
		Path:        "/api/v1/titles/{kind}/{id}/credits",
		Summary:     "Title credits",
		Description: "Returns cast (in billing order) and crew for a title",
		Tags:        []string{"Titles"},
	}, s.handleTitleCredits)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSimilarTitles",
		Method:      http.MethodGet,
		Path:        "/api/v1/titles/{kind}/{id}/similar",
		Summary:     "Similar titles",
		Description: "Returns titles similar to the given one",
		Tags:        []string{"Titles"},
	}, s.handleSimilarTitles)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRecommendedTitles",
		Method:      http.MethodGet,
		Path:        "/api/v1/titles/{kind}/{id}/recommendations",
		Summary:     "Recommended titles",
		Description: "Returns the catalog's recommendations for the given title",
		Tags:        []string{"Titles"},
	}, s.handleRecommendedTitles)
}

// TitleIDInput identifies a title by numeric id.
type TitleIDInput struct {
	ID int `path:"id" minimum:"1" doc:"Catalog title id"`
}

// MovieDetailsOutput wraps the movie record for Huma.
type MovieDetailsOutput struct {
	Body domain.MovieDetails
}

func (s *Server) handleMovieDetails(ctx context.Context, input *TitleIDInput) (*MovieDetailsOutput, error) {
	details, err := unwrap(s.catalog.MovieDetails(ctx, input.ID))
	if err != nil {
		return nil, err
	}
	return &MovieDetailsOutput{Body: details}, nil
}

// ShowDetailsOutput wraps the show record for Huma.
type ShowDetailsOutput struct {
	Body domain.ShowDetails
}

func (s *Server) handleShowDetails(ctx context.Context, input *TitleIDInput) (*ShowDetailsOutput, error) {
	details, err := unwrap(s.catalog.ShowDetails(ctx, input.ID))
	if err != nil {
		return nil, err
	}
	return &ShowDetailsOutput{Body: details}, nil
}

// TitleSubresourceInput identifies a title by kind and id.
type TitleSubresourceInput struct {
	Kind string `path:"kind" enum:"movie,tv" doc:"Media kind"`
	ID   int    `path:"id" minimum:"1" doc:"Catalog title id"`
}

// VideosInput adds the YouTube-only toggle to the subresource input.
type VideosInput struct {
	TitleSubresourceInput
	YouTube bool `query:"youtube" required:"false" doc:"Return only YouTube-hosted videos"`
}

// VideosOutput wraps the video list for Huma.
type VideosOutput struct {
	Body domain.VideoList
}

func (s *Server) handleTitleVideos(ctx context.Context, input *VideosInput) (*VideosOutput, error) {
	list, err := unwrap(s.catalog.Videos(ctx, kindOf(input.Kind), input.ID))
	if err != nil {
		return nil, err
	}
	if input.YouTube {
		list.Results = catalog.YouTubeVideos(list)
	}
	return &VideosOutput{Body: list}, nil
}

// CreditsOutput wraps the credits for Huma.
type CreditsOutput struct {
	Body domain.Credits
}

func (s *Server) handleTitleCredits(ctx context.Context, input *TitleSubresourceInput) (*CreditsOutput, error) {
	credits, err := unwrap(s.catalog.Credits(ctx, kindOf(input.Kind), input.ID))
	if err != nil {
		return nil, err
	}
	return &CreditsOutput{Body: credits}, nil
}

// RelatedTitlesInput identifies a title and a page of related results.
type RelatedTitlesInput struct {
	TitleSubresourceInput
	Page int `query:"page" minimum:"1" required:"false" doc:"1-based page number"`
}

func (s *Server) handleSimilarTitles(ctx context.Context, input *RelatedTitlesInput) (*TitlePageOutput, error) {
	page, err := unwrap(s.catalog.Similar(ctx, kindOf(input.Kind), input.ID, input.Page))
	if err != nil {
		return nil, err
	}
	return &TitlePageOutput{Body: page}, nil
}

func (s *Server) handleRecommendedTitles(ctx context.Context, input *RelatedTitlesInput) (*TitlePageOutput, error) {
	page, err := unwrap(s.catalog.Recommendations(ctx, kindOf(input.Kind), input.ID, input.Page))
	if err != nil {
		return nil, err
	}
	return &TitlePageOutput{Body: page}, nil
}
