package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelistapp/reelist-server/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := New(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
	}, logger)
	t.Cleanup(client.Close)

	return client, server
}

func TestClient_SearchMovies(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		response    string
		wantOK      bool
		wantCount   int
		wantMessage string
	}{
		{
			name:       "successful search",
			statusCode: http.StatusOK,
			response:   `{"page":1,"results":[{"id":603,"title":"The Matrix"},{"id":604,"title":"The Matrix Reloaded"}],"total_pages":1,"total_results":2}`,
			wantOK:     true,
			wantCount:  2,
		},
		{
			name:       "empty results",
			statusCode: http.StatusOK,
			response:   `{"page":1,"results":[],"total_pages":0,"total_results":0}`,
			wantOK:     true,
			wantCount:  0,
		},
		{
			name:        "rate limited",
			statusCode:  http.StatusTooManyRequests,
			response:    `{"status_code":25,"status_message":"Your request count is over the allowed limit."}`,
			wantMessage: "Your request count is over the allowed limit.",
		},
		{
			name:        "server error without body",
			statusCode:  http.StatusInternalServerError,
			response:    ``,
			wantMessage: "catalog returned status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search/movie", r.URL.Path)
				assert.Equal(t, "matrix", r.URL.Query().Get("query"))
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response))
			})

			result := client.SearchMovies(context.Background(), "matrix", 1)

			assert.Equal(t, tt.wantOK, result.OK())
			if tt.wantOK {
				assert.Len(t, result.Value().Results, tt.wantCount)
				assert.Empty(t, result.Message())
			} else {
				assert.Equal(t, tt.wantMessage, result.Message())
				assert.Empty(t, result.Value().Results)
			}
		})
	}
}

func TestClient_CredentialAttached(t *testing.T) {
	var gotKey string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	client.MovieCategory(context.Background(), CategoryPopular, 1)
	assert.Equal(t, "test-key", gotKey)
}

func TestClient_MovieDetails(t *testing.T) {
	t.Run("appends videos and credits", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/movie/603", r.URL.Path)
			assert.Equal(t, "videos,credits", r.URL.Query().Get("append_to_response"))
			w.Write([]byte(`{
				"id":603,"title":"The Matrix","runtime":136,
				"genres":[{"id":28,"name":"Action"}],
				"videos":{"id":603,"results":[{"key":"abc","site":"YouTube","type":"Trailer"}]},
				"credits":{"id":603,"cast":[{"id":1,"name":"Keanu Reeves","character":"Neo","order":0}],"crew":[]}
			}`))
		})

		result := client.MovieDetails(context.Background(), 603)
		require.True(t, result.OK())

		details := result.Value()
		assert.Equal(t, "The Matrix", details.DisplayTitle())
		assert.Equal(t, 136, details.Runtime)
		require.NotNil(t, details.Videos)
		assert.Len(t, details.Videos.Results, 1)
		require.NotNil(t, details.Credits)
		assert.Equal(t, "Neo", details.Credits.Cast[0].Character)
	})

	t.Run("not found surfaces upstream message", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
		})

		result := client.MovieDetails(context.Background(), 999999)
		assert.False(t, result.OK())
		assert.Equal(t, "The resource you requested could not be found.", result.Message())
	})
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"page":1,"results":[]}`))
	}))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := New(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 50 * time.Millisecond,
	}, logger)
	t.Cleanup(client.Close)

	result := client.SearchMovies(context.Background(), "matrix", 1)
	assert.False(t, result.OK())
	assert.NotEmpty(t, result.Message())
	assert.Empty(t, result.Value().Results)
}

func TestClient_Discover(t *testing.T) {
	t.Run("unset filters are omitted", func(t *testing.T) {
		var got map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			w.Write([]byte(`{"page":1,"results":[]}`))
		})

		client.Discover(context.Background(), domain.KindMovie, DiscoverFilter{}, 1)

		assert.NotContains(t, got, "sort_by")
		assert.NotContains(t, got, "with_genres")
		assert.NotContains(t, got, "year")
		assert.NotContains(t, got, "vote_average.gte")
		assert.Contains(t, got, "page")
	})

	t.Run("set filters are forwarded", func(t *testing.T) {
		var got map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			assert.Equal(t, "/discover/movie", r.URL.Path)
			w.Write([]byte(`{"page":1,"results":[]}`))
		})

		client.Discover(context.Background(), domain.KindMovie, DiscoverFilter{
			SortBy:     "vote_average.desc",
			WithGenres: "28,12",
			Year:       1999,
			MinVote:    7.5,
		}, 2)

		assert.Equal(t, []string{"vote_average.desc"}, got["sort_by"])
		assert.Equal(t, []string{"28,12"}, got["with_genres"])
		assert.Equal(t, []string{"1999"}, got["year"])
		assert.Equal(t, []string{"7.5"}, got["vote_average.gte"])
		assert.Equal(t, []string{"2"}, got["page"])
	})

	t.Run("show year uses first_air_date_year", func(t *testing.T) {
		var got map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			assert.Equal(t, "/discover/tv", r.URL.Path)
			w.Write([]byte(`{"page":1,"results":[]}`))
		})

		client.Discover(context.Background(), domain.KindShow, DiscoverFilter{Year: 2008}, 1)

		assert.Equal(t, []string{"2008"}, got["first_air_date_year"])
		assert.NotContains(t, got, "year")
	})
}

func TestClient_Trending(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/day", r.URL.Path)
		w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"A","media_type":"movie"}]}`))
	})

	result := client.Trending(context.Background(), domain.KindMovie, domain.WindowDay, 1)
	require.True(t, result.OK())
	assert.Equal(t, domain.KindMovie, result.Value().Results[0].MediaType)
}

func TestClient_Genres(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/tv/list", r.URL.Path)
		w.Write([]byte(`{"genres":[{"id":18,"name":"Drama"},{"id":35,"name":"Comedy"}]}`))
	})

	result := client.ShowGenres(context.Background())
	require.True(t, result.OK())
	assert.Len(t, result.Value(), 2)
	assert.Equal(t, "Drama", result.Value()[0].Name)
}

func TestFilterTitles(t *testing.T) {
	page := domain.Page[domain.Title]{
		Page: 1,
		Results: []domain.Title{
			{ID: 1, MediaType: domain.KindMovie, Title: "A"},
			{ID: 2, MediaType: "person", Name: "Somebody"},
			{ID: 3, MediaType: domain.KindShow, Name: "B"},
			{ID: 4}, // no media_type at all
		},
		TotalResults: 4,
	}

	filtered := FilterTitles(page)

	require.Len(t, filtered.Results, 2)
	assert.Equal(t, 1, filtered.Results[0].ID)
	assert.Equal(t, 3, filtered.Results[1].ID)
	// Page metadata stays untouched.
	assert.Equal(t, 4, filtered.TotalResults)
}

func TestYouTubeVideos(t *testing.T) {
	list := domain.VideoList{
		ID: 603,
		Results: []domain.Video{
			{Key: "a", Site: "YouTube", Type: "Trailer"},
			{Key: "b", Site: "Vimeo", Type: "Trailer"},
			{Key: "c", Site: "YouTube", Type: "Clip"},
		},
	}

	got := YouTubeVideos(list)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Key)
	assert.Equal(t, "c", got[1].Key)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(domain.KindMovie, CategoryNowPlaying))
	assert.True(t, ValidCategory(domain.KindShow, CategoryOnTheAir))
	assert.True(t, ValidCategory(domain.KindShow, CategoryPopular))
	assert.False(t, ValidCategory(domain.KindShow, CategoryNowPlaying))
	assert.False(t, ValidCategory(domain.KindMovie, CategoryAiringToday))
	assert.False(t, ValidCategory(domain.KindMovie, "latest"))
}
