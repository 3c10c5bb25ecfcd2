package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reelistapp/reelist-server/internal/domain"
)

func TestDisplayTitle(t *testing.T) {
	movie := domain.Title{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30"}
	show := domain.Title{ID: 1396, Name: "Breaking Bad", FirstAirDate: "2008-01-20"}

	assert.Equal(t, "The Matrix", movie.DisplayTitle())
	assert.Equal(t, "Breaking Bad", show.DisplayTitle())

	assert.Equal(t, "1999-03-30", movie.FirstReleased())
	assert.Equal(t, "2008-01-20", show.FirstReleased())
}

func TestMediaKindValid(t *testing.T) {
	assert.True(t, domain.KindMovie.Valid())
	assert.True(t, domain.KindShow.Valid())
	assert.False(t, domain.MediaKind("person").Valid())
	assert.False(t, domain.MediaKind("").Valid())
}

func TestNewWatchlistEntry(t *testing.T) {
	t.Run("movie by explicit media type", func(t *testing.T) {
		entry := domain.NewWatchlistEntry(domain.Title{
			ID:          603,
			MediaType:   domain.KindMovie,
			Title:       "The Matrix",
			PosterPath:  "/m.jpg",
			VoteAverage: 8.2,
		})

		assert.Equal(t, domain.KindMovie, entry.MediaType)
		assert.Equal(t, "The Matrix", entry.Title)
		assert.Equal(t, "/m.jpg", entry.PosterPath)
		assert.Equal(t, 8.2, entry.VoteAverage)
		assert.Zero(t, entry.AddedAt)
	})

	t.Run("show inferred from name", func(t *testing.T) {
		entry := domain.NewWatchlistEntry(domain.Title{ID: 1396, Name: "Breaking Bad"})
		assert.Equal(t, domain.KindShow, entry.MediaType)
		assert.Equal(t, "Breaking Bad", entry.Title)
	})

	t.Run("movie inferred from title", func(t *testing.T) {
		entry := domain.NewWatchlistEntry(domain.Title{ID: 603, Title: "The Matrix"})
		assert.Equal(t, domain.KindMovie, entry.MediaType)
	})
}

func TestImageURL(t *testing.T) {
	assert.Equal(t,
		"https://image.tmdb.org/t/p/w342/poster.jpg",
		domain.ImageURL("/poster.jpg", domain.PosterMedium))

	assert.Equal(t,
		"https://image.tmdb.org/t/p/original/backdrop.jpg",
		domain.ImageURL("/backdrop.jpg", ""))

	assert.Empty(t, domain.ImageURL("", domain.PosterLarge))
}
