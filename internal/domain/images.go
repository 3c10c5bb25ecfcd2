package domain

// Image size ladders exposed by the catalog's image CDN.
const (
	PosterSmall    = "w185"
	PosterMedium   = "w342"
	PosterLarge    = "w500"
	PosterOriginal = "original"

	BackdropSmall    = "w300"
	BackdropMedium   = "w780"
	BackdropLarge    = "w1280"
	BackdropOriginal = "original"

	ProfileSmall  = "w45"
	ProfileMedium = "w185"
	ProfileLarge  = "h632"
)

// DefaultImageBaseURL is the catalog's image CDN root.
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// ImageURL resolves a catalog image path against the CDN at the given size.
// Returns "" for an empty path so callers can skip missing artwork.
func ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = "original"
	}
	return DefaultImageBaseURL + "/" + size + path
}
