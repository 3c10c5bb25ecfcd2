package store

import (
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/reelistapp/reelist-server/internal/domain"
)

// The whole watchlist lives as one JSON array under a single slot key.
// Mutations are full read-modify-write cycles serialized by s.mu, so the
// stored value is always a complete, consistent snapshot.
var watchlistKey = []byte("watchlist")

// AddToWatchlist inserts the entry at the front of the watchlist and stamps
// its AddedAt. Returns false when the id is already present or the write
// fails; the stored collection is untouched in either case.
func (s *Store) AddToWatchlist(entry domain.WatchlistEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadWatchlist()
	for _, e := range entries {
		if e.ID == entry.ID {
			return false
		}
	}

	entry.AddedAt = time.Now().UnixMilli()
	entries = append([]domain.WatchlistEntry{entry}, entries...)

	if err := s.set(watchlistKey, entries); err != nil {
		s.logger.Error("failed to persist watchlist", "error", err)
		return false
	}
	return true
}

// RemoveFromWatchlist deletes the entry with the given id. Removing an absent
// id is a success: the postcondition (id not present) already holds. Returns
// false only when the write fails.
func (s *Store) RemoveFromWatchlist(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.loadWatchlist()
	kept := entries[:0:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return true
	}

	if err := s.set(watchlistKey, kept); err != nil {
		s.logger.Error("failed to persist watchlist", "error", err)
		return false
	}
	return true
}

// Watchlist returns all entries in stored order, newest first. An absent or
// unreadable slot yields an empty list, never an error.
func (s *Store) Watchlist() []domain.WatchlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadWatchlist()
}

// WatchlistContains reports whether the id is on the watchlist.
func (s *Store) WatchlistContains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.loadWatchlist() {
		if e.ID == id {
			return true
		}
	}
	return false
}

// WatchlistCount returns the number of entries on the watchlist.
func (s *Store) WatchlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.loadWatchlist())
}

// ClearWatchlist removes every entry. Returns false only when the delete
// fails.
func (s *Store) ClearWatchlist() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.delete(watchlistKey); err != nil {
		s.logger.Error("failed to clear watchlist", "error", err)
		return false
	}
	return true
}

// loadWatchlist reads the slot, treating a missing key as empty and a
// corrupt value as empty-with-a-warning. Callers hold s.mu.
func (s *Store) loadWatchlist() []domain.WatchlistEntry {
	var entries []domain.WatchlistEntry
	err := s.get(watchlistKey, &entries)
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.logger.Warn("unreadable watchlist value, treating as empty", "error", err)
		}
		return []domain.WatchlistEntry{}
	}
	if entries == nil {
		entries = []domain.WatchlistEntry{}
	}
	return entries
}
