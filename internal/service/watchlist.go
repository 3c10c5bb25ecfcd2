package service

import (
	"log/slog"

	"github.com/reelistapp/reelist-server/internal/domain"
	"github.com/reelistapp/reelist-server/internal/errors"
	"github.com/reelistapp/reelist-server/internal/store"
)

// WatchlistService manages the persisted watchlist. Entries are denormalized
// snapshots taken at add time and never refreshed from the catalog.
type WatchlistService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewWatchlistService creates a new watchlist service.
func NewWatchlistService(store *store.Store, logger *slog.Logger) *WatchlistService {
	return &WatchlistService{
		store:  store,
		logger: logger,
	}
}

// Add snapshots the title and puts it on the watchlist.
// Returns ErrAlreadyExists when the title is already there.
func (s *WatchlistService) Add(title domain.Title) (domain.WatchlistEntry, error) {
	entry := domain.NewWatchlistEntry(title)

	if s.store.WatchlistContains(entry.ID) {
		return domain.WatchlistEntry{}, errors.AlreadyExists("title is already on the watchlist")
	}
	if !s.store.AddToWatchlist(entry) {
		return domain.WatchlistEntry{}, errors.Internal("failed to save watchlist")
	}

	s.logger.Info("watchlist add", "id", entry.ID, "title", entry.Title)

	// Read back so the caller sees the stamped AddedAt.
	for _, e := range s.store.Watchlist() {
		if e.ID == entry.ID {
			return e, nil
		}
	}
	return entry, nil
}

// Remove takes the id off the watchlist. Removing an absent id succeeds.
func (s *WatchlistService) Remove(id int) error {
	if !s.store.RemoveFromWatchlist(id) {
		return errors.Internal("failed to save watchlist")
	}
	s.logger.Info("watchlist remove", "id", id)
	return nil
}

// Toggle adds the title when absent and removes it when present.
// Returns true when the title ended up on the watchlist.
func (s *WatchlistService) Toggle(title domain.Title) (bool, error) {
	if s.store.WatchlistContains(title.ID) {
		return false, s.Remove(title.ID)
	}
	if _, err := s.Add(title); err != nil {
		return false, err
	}
	return true, nil
}

// All returns the watchlist, newest first.
func (s *WatchlistService) All() []domain.WatchlistEntry {
	return s.store.Watchlist()
}

// Contains reports whether the id is on the watchlist.
func (s *WatchlistService) Contains(id int) bool {
	return s.store.WatchlistContains(id)
}

// Count returns the number of watchlist entries.
func (s *WatchlistService) Count() int {
	return s.store.WatchlistCount()
}

// Clear empties the watchlist.
func (s *WatchlistService) Clear() error {
	if !s.store.ClearWatchlist() {
		return errors.Internal("failed to clear watchlist")
	}
	s.logger.Info("watchlist cleared")
	return nil
}
