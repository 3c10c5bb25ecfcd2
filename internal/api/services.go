package api

import (
	"github.com/reelistapp/reelist-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Feed      *service.FeedService
	Watchlist *service.WatchlistService
}
