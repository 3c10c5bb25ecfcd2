package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/reelistapp/reelist-server/internal/domain"
)

func (s *Server) registerWatchlistRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listWatchlist",
		Method:      http.MethodGet,
		Path:        "/api/v1/watchlist",
		Summary:     "List watchlist",
		Description: "Returns all watchlist entries, newest first",
		Tags:        []string{"Watchlist"},
	}, s.handleListWatchlist)

	huma.Register(s.api, huma.Operation{
		OperationID: "addToWatchlist",
		Method:      http.MethodPost,
		Path:        "/api/v1/watchlist",
		Summary:     "Add to watchlist",
		Description: "Snapshots the title and adds it to the watchlist. Adding a title twice is a conflict.",
		Tags:        []string{"Watchlist"},
		Errors:      []int{http.StatusConflict},
	}, s.handleAddToWatchlist)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleWatchlist",
		Method:      http.MethodPost,
		Path:        "/api/v1/watchlist/toggle",
		Summary:     "Toggle watchlist",
		Description: "Adds the title when absent, removes it when present",
		Tags:        []string{"Watchlist"},
	}, s.handleToggleWatchlist)

	huma.Register(s.api, huma.Operation{
		OperationID: "getWatchlistCount",
		Method:      http.MethodGet,
		Path:        "/api/v1/watchlist/count",
		Summary:     "Watchlist count",
		Tags:        []string{"Watchlist"},
	}, s.handleWatchlistCount)

	huma.Register(s.api, huma.Operation{
		OperationID: "checkWatchlist",
		Method:      http.MethodGet,
		Path:        "/api/v1/watchlist/{id}",
		Summary:     "Check watchlist",
		Description: "Reports whether the title is on the watchlist",
		Tags:        []string{"Watchlist"},
	}, s.handleCheckWatchlist)

	huma.Register(s.api, huma.Operation{
		OperationID:   "removeFromWatchlist",
		Method:        http.MethodDelete,
		Path:          "/api/v1/watchlist/{id}",
		Summary:       "Remove from watchlist",
		Description:   "Removes the title. Removing an absent title still succeeds.",
		Tags:          []string{"Watchlist"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleRemoveFromWatchlist)

	huma.Register(s.api, huma.Operation{
		OperationID:   "clearWatchlist",
		Method:        http.MethodDelete,
		Path:          "/api/v1/watchlist",
		Summary:       "Clear watchlist",
		Tags:          []string{"Watchlist"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleClearWatchlist)
}

// WatchlistResponse contains the full watchlist.
type WatchlistResponse struct {
	Entries []domain.WatchlistEntry `json:"entries"`
	Count   int                     `json:"count"`
}

// WatchlistOutput wraps the watchlist for Huma.
type WatchlistOutput struct {
	Body WatchlistResponse
}

func (s *Server) handleListWatchlist(_ context.Context, _ *struct{}) (*WatchlistOutput, error) {
	entries := s.services.Watchlist.All()
	return &WatchlistOutput{
		Body: WatchlistResponse{Entries: entries, Count: len(entries)},
	}, nil
}

// WatchlistTitleRequest is the title snapshot sent by the client.
type WatchlistTitleRequest struct {
	ID          int     `json:"id" minimum:"1" doc:"Catalog title id"`
	MediaType   string  `json:"media_type,omitempty" enum:"movie,tv" doc:"Media kind; inferred from title/name when absent"`
	Title       string  `json:"title,omitempty" doc:"Movie title"`
	Name        string  `json:"name,omitempty" doc:"Show name"`
	PosterPath  string  `json:"poster_path,omitempty" doc:"Poster image path"`
	VoteAverage float64 `json:"vote_average,omitempty" minimum:"0" maximum:"10" doc:"Average rating"`
}

func (r WatchlistTitleRequest) title() domain.Title {
	return domain.Title{
		ID:          r.ID,
		MediaType:   domain.MediaKind(r.MediaType),
		Title:       r.Title,
		Name:        r.Name,
		PosterPath:  r.PosterPath,
		VoteAverage: r.VoteAverage,
	}
}

// WatchlistAddInput wraps the add request body.
type WatchlistAddInput struct {
	Body WatchlistTitleRequest
}

// WatchlistEntryOutput wraps a single entry for Huma.
type WatchlistEntryOutput struct {
	Body domain.WatchlistEntry
}

func (s *Server) handleAddToWatchlist(_ context.Context, input *WatchlistAddInput) (*WatchlistEntryOutput, error) {
	entry, err := s.services.Watchlist.Add(input.Body.title())
	if err != nil {
		return nil, err
	}
	return &WatchlistEntryOutput{Body: entry}, nil
}

// WatchlistToggleResponse reports the state after a toggle.
type WatchlistToggleResponse struct {
	ID          int  `json:"id"`
	OnWatchlist bool `json:"on_watchlist"`
}

// WatchlistToggleOutput wraps the toggle response for Huma.
type WatchlistToggleOutput struct {
	Body WatchlistToggleResponse
}

func (s *Server) handleToggleWatchlist(_ context.Context, input *WatchlistAddInput) (*WatchlistToggleOutput, error) {
	on, err := s.services.Watchlist.Toggle(input.Body.title())
	if err != nil {
		return nil, err
	}
	return &WatchlistToggleOutput{
		Body: WatchlistToggleResponse{ID: input.Body.ID, OnWatchlist: on},
	}, nil
}

// WatchlistCountResponse carries the entry count.
type WatchlistCountResponse struct {
	Count int `json:"count"`
}

// WatchlistCountOutput wraps the count for Huma.
type WatchlistCountOutput struct {
	Body WatchlistCountResponse
}

func (s *Server) handleWatchlistCount(_ context.Context, _ *struct{}) (*WatchlistCountOutput, error) {
	return &WatchlistCountOutput{
		Body: WatchlistCountResponse{Count: s.services.Watchlist.Count()},
	}, nil
}

// WatchlistIDInput identifies a watchlist entry.
type WatchlistIDInput struct {
	ID int `path:"id" minimum:"1" doc:"Catalog title id"`
}

// WatchlistCheckOutput wraps the membership check for Huma.
type WatchlistCheckOutput struct {
	Body WatchlistToggleResponse
}

func (s *Server) handleCheckWatchlist(_ context.Context, input *WatchlistIDInput) (*WatchlistCheckOutput, error) {
	return &WatchlistCheckOutput{
		Body: WatchlistToggleResponse{
			ID:          input.ID,
			OnWatchlist: s.services.Watchlist.Contains(input.ID),
		},
	}, nil
}

func (s *Server) handleRemoveFromWatchlist(_ context.Context, input *WatchlistIDInput) (*struct{}, error) {
	if err := s.services.Watchlist.Remove(input.ID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleClearWatchlist(_ context.Context, _ *struct{}) (*struct{}, error) {
	if err := s.services.Watchlist.Clear(); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}
