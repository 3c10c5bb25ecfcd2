package service_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelistapp/reelist-server/internal/catalog"
	"github.com/reelistapp/reelist-server/internal/service"
)

func newFeedService(t *testing.T, handler http.HandlerFunc) *service.FeedService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := catalog.New(catalog.Config{BaseURL: server.URL, APIKey: "test-key"}, logger)
	t.Cleanup(client.Close)

	return service.NewFeedService(client, logger)
}

func sectionByKey(t *testing.T, sections []service.FeedSection, key string) service.FeedSection {
	t.Helper()
	for _, s := range sections {
		if s.Key == key {
			return s
		}
	}
	t.Fatalf("no section with key %q", key)
	return service.FeedSection{}
}

func TestFeedHome(t *testing.T) {
	svc := newFeedService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"A"}],"total_pages":1,"total_results":1}`))
	})

	sections := svc.Home(context.Background())
	require.Len(t, sections, 5)

	for _, s := range sections {
		assert.True(t, s.OK, "section %s", s.Key)
		assert.Len(t, s.Results, 1, "section %s", s.Key)
		assert.NotEmpty(t, s.Label, "section %s", s.Key)
	}

	// Stable section order regardless of which request finished first.
	assert.Equal(t, "trending", sections[0].Key)
	assert.Equal(t, "upcoming", sections[4].Key)
}

func TestFeedHomePartialFailure(t *testing.T) {
	svc := newFeedService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/movie/upcoming" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"status_message":"Internal error: Something went wrong."}`))
			return
		}
		w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"A"}],"total_pages":1,"total_results":1}`))
	})

	sections := svc.Home(context.Background())
	require.Len(t, sections, 5)

	failed := sectionByKey(t, sections, "upcoming")
	assert.False(t, failed.OK)
	assert.Equal(t, "Internal error: Something went wrong.", failed.Message)
	assert.Empty(t, failed.Results)

	// The other four sections still render.
	for _, key := range []string{"trending", "popular", "top_rated", "now_playing"} {
		s := sectionByKey(t, sections, key)
		assert.True(t, s.OK, "section %s", key)
		assert.Len(t, s.Results, 1, "section %s", key)
	}
}
