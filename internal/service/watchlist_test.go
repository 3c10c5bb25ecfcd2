package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelistapp/reelist-server/internal/domain"
	"github.com/reelistapp/reelist-server/internal/errors"
	"github.com/reelistapp/reelist-server/internal/service"
	"github.com/reelistapp/reelist-server/internal/store"
)

func newWatchlistService(t *testing.T) *service.WatchlistService {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return service.NewWatchlistService(s, logger)
}

func movie(id int, name string) domain.Title {
	return domain.Title{
		ID:          id,
		Title:       name,
		PosterPath:  "/poster.jpg",
		VoteAverage: 8.1,
	}
}

func TestWatchlistServiceAdd(t *testing.T) {
	svc := newWatchlistService(t)

	entry, err := svc.Add(movie(603, "The Matrix"))
	require.NoError(t, err)

	assert.Equal(t, 603, entry.ID)
	assert.Equal(t, "The Matrix", entry.Title)
	assert.Equal(t, domain.KindMovie, entry.MediaType)
	assert.NotZero(t, entry.AddedAt)

	assert.True(t, svc.Contains(603))
	assert.Equal(t, 1, svc.Count())
}

func TestWatchlistServiceAddDuplicate(t *testing.T) {
	svc := newWatchlistService(t)

	_, err := svc.Add(movie(603, "The Matrix"))
	require.NoError(t, err)

	_, err = svc.Add(movie(603, "The Matrix"))
	assert.ErrorIs(t, err, errors.ErrAlreadyExists)
	assert.Equal(t, 1, svc.Count())
}

func TestWatchlistServiceSnapshot(t *testing.T) {
	svc := newWatchlistService(t)

	show := domain.Title{
		ID:          1396,
		Name:        "Breaking Bad",
		PosterPath:  "/bb.jpg",
		VoteAverage: 8.9,
	}
	entry, err := svc.Add(show)
	require.NoError(t, err)

	// Shows are recognized by Name and snapshotted with their kind.
	assert.Equal(t, domain.KindShow, entry.MediaType)
	assert.Equal(t, "Breaking Bad", entry.Title)
	assert.Equal(t, "/bb.jpg", entry.PosterPath)
	assert.Equal(t, 8.9, entry.VoteAverage)
}

func TestWatchlistServiceRemove(t *testing.T) {
	svc := newWatchlistService(t)

	_, err := svc.Add(movie(603, "The Matrix"))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(603))
	assert.False(t, svc.Contains(603))

	// Idempotent.
	require.NoError(t, svc.Remove(603))
}

func TestWatchlistServiceToggle(t *testing.T) {
	svc := newWatchlistService(t)

	added, err := svc.Toggle(movie(603, "The Matrix"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, svc.Contains(603))

	added, err = svc.Toggle(movie(603, "The Matrix"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, svc.Contains(603))
}

func TestWatchlistServiceClear(t *testing.T) {
	svc := newWatchlistService(t)

	_, err := svc.Add(movie(1, "A"))
	require.NoError(t, err)
	_, err = svc.Add(movie(2, "B"))
	require.NoError(t, err)

	require.NoError(t, svc.Clear())
	assert.Equal(t, 0, svc.Count())
	assert.Empty(t, svc.All())
}
