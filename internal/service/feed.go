// Package service provides the business logic layer between the HTTP API,
// the catalog client, and the watchlist store.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/reelistapp/reelist-server/internal/catalog"
	"github.com/reelistapp/reelist-server/internal/domain"
)

// FeedSection is one independently loaded block of the home feed. A failed
// section carries its message so the screen can render the others and show a
// per-section error, the way the home screen loads each row on its own.
type FeedSection struct {
	Key     string         `json:"key"`
	Label   string         `json:"label"`
	OK      bool           `json:"ok"`
	Message string         `json:"message,omitempty"`
	Results []domain.Title `json:"results,omitempty"`
}

// FeedService assembles the home feed from the catalog.
type FeedService struct {
	catalog *catalog.Client
	logger  *slog.Logger
}

// NewFeedService creates a new feed service.
func NewFeedService(catalog *catalog.Client, logger *slog.Logger) *FeedService {
	return &FeedService{
		catalog: catalog,
		logger:  logger,
	}
}

// Home loads the five home sections in parallel and returns them all,
// succeeded or not. One slow or failing section never takes down the feed.
func (s *FeedService) Home(ctx context.Context) []FeedSection {
	type loader struct {
		key   string
		label string
		load  func(context.Context) catalog.Result[domain.Page[domain.Title]]
	}

	loaders := []loader{
		{
			key:   "trending",
			label: "Trending Today",
			load: func(ctx context.Context) catalog.Result[domain.Page[domain.Title]] {
				return s.catalog.Trending(ctx, domain.KindMovie, domain.WindowDay, 1)
			},
		},
		{
			key:   "popular",
			label: "Popular",
			load: func(ctx context.Context) catalog.Result[domain.Page[domain.Title]] {
				return s.catalog.MovieCategory(ctx, catalog.CategoryPopular, 1)
			},
		},
		{
			key:   "top_rated",
			label: "Top Rated",
			load: func(ctx context.Context) catalog.Result[domain.Page[domain.Title]] {
				return s.catalog.MovieCategory(ctx, catalog.CategoryTopRated, 1)
			},
		},
		{
			key:   "now_playing",
			label: "Now Playing",
			load: func(ctx context.Context) catalog.Result[domain.Page[domain.Title]] {
				return s.catalog.MovieCategory(ctx, catalog.CategoryNowPlaying, 1)
			},
		},
		{
			key:   "upcoming",
			label: "Upcoming",
			load: func(ctx context.Context) catalog.Result[domain.Page[domain.Title]] {
				return s.catalog.MovieCategory(ctx, catalog.CategoryUpcoming, 1)
			},
		},
	}

	sections := make([]FeedSection, len(loaders))

	var wg sync.WaitGroup
	for i, l := range loaders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := l.load(ctx)
			section := FeedSection{
				Key:     l.key,
				Label:   l.label,
				OK:      result.OK(),
				Message: result.Message(),
				Results: result.Value().Results,
			}
			if !section.OK {
				s.logger.Warn("feed section failed", "section", l.key, "message", section.Message)
			}
			sections[i] = section
		}()
	}
	wg.Wait()

	return sections
}
