package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/reelistapp/reelist-server/internal/service"
)

func (s *Server) registerFeedRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getHomeFeed",
		Method:      http.MethodGet,
		Path:        "/api/v1/feed/home",
		Summary:     "Home feed",
		Description: "Returns the home screen sections, loaded in parallel. Failed sections carry a message instead of results.",
		Tags:        []string{"Feed"},
	}, s.handleHomeFeed)
}

// FeedResponse contains the home feed sections.
type FeedResponse struct {
	Sections []service.FeedSection `json:"sections"`
}

// FeedOutput wraps the feed response for Huma.
type FeedOutput struct {
	Body FeedResponse
}

func (s *Server) handleHomeFeed(ctx context.Context, _ *struct{}) (*FeedOutput, error) {
	sections := s.services.Feed.Home(ctx)
	return &FeedOutput{Body: FeedResponse{Sections: sections}}, nil
}
