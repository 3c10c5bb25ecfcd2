package api

import (
	"github.com/reelistapp/reelist-server/internal/catalog"
	"github.com/reelistapp/reelist-server/internal/domain"
	domainerrors "github.com/reelistapp/reelist-server/internal/errors"
)

// unwrap turns a catalog Result into value-or-error: failed results become
// 502s carrying the Result's message, so the client sees the upstream's
// wording.
func unwrap[T any](r catalog.Result[T]) (T, error) {
	if !r.OK() {
		var zero T
		return zero, domainerrors.Upstream(r.Message())
	}
	return r.Value(), nil
}

// kindOf converts the validated path parameter into a media kind.
func kindOf(kind string) domain.MediaKind {
	return domain.MediaKind(kind)
}
