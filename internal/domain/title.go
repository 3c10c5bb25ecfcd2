// Package domain contains the core types shared across the Reelist server.
package domain

// MediaKind discriminates movies from TV shows in catalog queries.
type MediaKind string

// Supported media kinds.
const (
	KindMovie MediaKind = "movie"
	KindShow  MediaKind = "tv"
)

// Valid reports whether the media kind is one the catalog understands.
func (k MediaKind) Valid() bool {
	return k == KindMovie || k == KindShow
}

// TrendWindow selects the aggregation window for trending queries.
type TrendWindow string

// Supported trending windows.
const (
	WindowDay  TrendWindow = "day"
	WindowWeek TrendWindow = "week"
)

// Valid reports whether the window is one the catalog understands.
func (w TrendWindow) Valid() bool {
	return w == WindowDay || w == WindowWeek
}

// Title is a movie or show summary as delivered by the catalog.
// Movies populate Title/ReleaseDate, shows populate Name/FirstAirDate;
// DisplayTitle and ReleaseDate smooth over the difference.
type Title struct {
	ID           int       `json:"id"`
	MediaType    MediaKind `json:"media_type,omitempty"` // only set on multi-search and trending results
	Title        string    `json:"title,omitempty"`
	Name         string    `json:"name,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	PosterPath   string    `json:"poster_path,omitempty"`
	BackdropPath string    `json:"backdrop_path,omitempty"`
	VoteAverage  float64   `json:"vote_average"`
	VoteCount    int       `json:"vote_count"`
	Popularity   float64   `json:"popularity"`
	GenreIDs     []int     `json:"genre_ids,omitempty"`
	ReleaseDate  string    `json:"release_date,omitempty"`
	FirstAirDate string    `json:"first_air_date,omitempty"`
	Language     string    `json:"original_language,omitempty"`
}

// DisplayTitle returns the human-facing title regardless of media kind.
func (t Title) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// FirstReleased returns the release date for movies or the first air date for shows.
func (t Title) FirstReleased() string {
	if t.ReleaseDate != "" {
		return t.ReleaseDate
	}
	return t.FirstAirDate
}

// Page is one page of a paginated catalog collection.
type Page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// Genre is a catalog genre id/name pair.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Video is a promotional video record attached to a title.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// VideoList is the catalog's videos sub-resource.
type VideoList struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

// CastMember is one cast credit, ordered by billing order as returned.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// CrewMember is one crew credit.
type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job,omitempty"`
	Department  string `json:"department,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Credits is the catalog's credits sub-resource.
type Credits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the full movie record, with videos and credits embedded
// when the catalog is asked to append them to the response.
type MovieDetails struct {
	Title
	Genres  []Genre    `json:"genres,omitempty"`
	Runtime int        `json:"runtime,omitempty"`
	Status  string     `json:"status,omitempty"`
	Tagline string     `json:"tagline,omitempty"`
	Videos  *VideoList `json:"videos,omitempty"`
	Credits *Credits   `json:"credits,omitempty"`
}

// ShowDetails is the full show record, mirroring MovieDetails for TV.
type ShowDetails struct {
	Title
	Genres           []Genre    `json:"genres,omitempty"`
	EpisodeRunTime   []int      `json:"episode_run_time,omitempty"`
	NumberOfEpisodes int        `json:"number_of_episodes,omitempty"`
	NumberOfSeasons  int        `json:"number_of_seasons,omitempty"`
	Status           string     `json:"status,omitempty"`
	Tagline          string     `json:"tagline,omitempty"`
	Videos           *VideoList `json:"videos,omitempty"`
	Credits          *Credits   `json:"credits,omitempty"`
}
