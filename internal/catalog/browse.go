package catalog

import (
	"context"
	"net/url"
	"strconv"

	"github.com/reelistapp/reelist-server/internal/domain"
)

// Movie list categories the catalog serves.
const (
	CategoryPopular    = "popular"
	CategoryTopRated   = "top_rated"
	CategoryNowPlaying = "now_playing"
	CategoryUpcoming   = "upcoming"

	// Show-only categories.
	CategoryAiringToday = "airing_today"
	CategoryOnTheAir    = "on_the_air"
)

// ValidCategory reports whether category is a known list for the given kind.
func ValidCategory(kind domain.MediaKind, category string) bool {
	switch category {
	case CategoryPopular, CategoryTopRated:
		return true
	case CategoryNowPlaying, CategoryUpcoming:
		return kind == domain.KindMovie
	case CategoryAiringToday, CategoryOnTheAir:
		return kind == domain.KindShow
	default:
		return false
	}
}

// pageQuery builds the pagination query, defaulting to the first page.
func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	return query
}

// MovieCategory fetches one page of a movie list (popular, top_rated,
// now_playing, upcoming).
func (c *Client) MovieCategory(ctx context.Context, category string, page int) Result[domain.Page[domain.Title]] {
	return fetch[domain.Page[domain.Title]](ctx, c, "/movie/"+category, pageQuery(page))
}

// ShowCategory fetches one page of a show list (popular, top_rated,
// airing_today, on_the_air).
func (c *Client) ShowCategory(ctx context.Context, category string, page int) Result[domain.Page[domain.Title]] {
	return fetch[domain.Page[domain.Title]](ctx, c, "/tv/"+category, pageQuery(page))
}

// Trending fetches one page of trending titles for the given window.
func (c *Client) Trending(ctx context.Context, kind domain.MediaKind, window domain.TrendWindow, page int) Result[domain.Page[domain.Title]] {
	return fetch[domain.Page[domain.Title]](ctx, c, "/trending/"+string(kind)+"/"+string(window), pageQuery(page))
}

// MovieDetails fetches a full movie record. Videos and credits ride along on
// the same call via append_to_response.
func (c *Client) MovieDetails(ctx context.Context, id int) Result[domain.MovieDetails] {
	query := url.Values{}
	query.Set("append_to_response", "videos,credits")
	return fetch[domain.MovieDetails](ctx, c, "/movie/"+strconv.Itoa(id), query)
}

// ShowDetails fetches a full show record, with videos and credits appended.
func (c *Client) ShowDetails(ctx context.Context, id int) Result[domain.ShowDetails] {
	query := url.Values{}
	query.Set("append_to_response", "videos,credits")
	return fetch[domain.ShowDetails](ctx, c, "/tv/"+strconv.Itoa(id), query)
}

// Videos fetches the promotional videos attached to a title.
func (c *Client) Videos(ctx context.Context, kind domain.MediaKind, id int) Result[domain.VideoList] {
	return fetch[domain.VideoList](ctx, c, "/"+string(kind)+"/"+strconv.Itoa(id)+"/videos", nil)
}

// Credits fetches cast and crew for a title. Cast keeps the billing order the
// catalog returns.
func (c *Client) Credits(ctx context.Context, kind domain.MediaKind, id int) Result[domain.Credits] {
	return fetch[domain.Credits](ctx, c, "/"+string(kind)+"/"+strconv.Itoa(id)+"/credits", nil)
}

// Similar fetches titles similar to the given one.
func (c *Client) Similar(ctx context.Context, kind domain.MediaKind, id int, page int) Result[domain.Page[domain.Title]] {
	return fetch[domain.Page[domain.Title]](ctx, c, "/"+string(kind)+"/"+strconv.Itoa(id)+"/similar", pageQuery(page))
}

// Recommendations fetches the catalog's recommendations for the given title.
func (c *Client) Recommendations(ctx context.Context, kind domain.MediaKind, id int, page int) Result[domain.Page[domain.Title]] {
	return fetch[domain.Page[domain.Title]](ctx, c, "/"+string(kind)+"/"+strconv.Itoa(id)+"/recommendations", pageQuery(page))
}

type genreList struct {
	Genres []domain.Genre `json:"genres"`
}

// MovieGenres fetches the movie genre id/name list.
func (c *Client) MovieGenres(ctx context.Context) Result[[]domain.Genre] {
	return genres(fetch[genreList](ctx, c, "/genre/movie/list", nil))
}

// ShowGenres fetches the show genre id/name list.
func (c *Client) ShowGenres(ctx context.Context) Result[[]domain.Genre] {
	return genres(fetch[genreList](ctx, c, "/genre/tv/list", nil))
}

func genres(r Result[genreList]) Result[[]domain.Genre] {
	if !r.OK() {
		return Fail[[]domain.Genre](r.Message())
	}
	return Ok(r.Value().Genres)
}

// YouTubeVideos filters a video list down to YouTube-hosted entries, the only
// site the mobile player can embed. Other sites are skipped, never errors.
func YouTubeVideos(list domain.VideoList) []domain.Video {
	out := make([]domain.Video, 0, len(list.Results))
	for _, v := range list.Results {
		if v.Site == "YouTube" {
			out = append(out, v)
		}
	}
	return out
}
