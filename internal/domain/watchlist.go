package domain

// WatchlistEntry is a saved title. Title, poster, and rating are snapshots
// taken when the entry is added; they are never refreshed from the catalog.
type WatchlistEntry struct {
	ID          int       `json:"id"`
	MediaType   MediaKind `json:"media_type,omitempty"`
	Title       string    `json:"title"`
	PosterPath  string    `json:"poster_path,omitempty"`
	VoteAverage float64   `json:"vote_average"`
	AddedAt     int64     `json:"added_at"` // epoch milliseconds, assigned by the store
}

// NewWatchlistEntry builds an entry snapshot from a catalog title.
// AddedAt is left zero; the store assigns it at insertion time.
func NewWatchlistEntry(t Title) WatchlistEntry {
	kind := t.MediaType
	if kind == "" {
		if t.Name != "" && t.Title == "" {
			kind = KindShow
		} else {
			kind = KindMovie
		}
	}
	return WatchlistEntry{
		ID:          t.ID,
		MediaType:   kind,
		Title:       t.DisplayTitle(),
		PosterPath:  t.PosterPath,
		VoteAverage: t.VoteAverage,
	}
}
