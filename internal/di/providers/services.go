package providers

import (
	"github.com/samber/do/v2"

	"github.com/reelistapp/reelist-server/internal/logger"
	"github.com/reelistapp/reelist-server/internal/service"
)

// ProvideFeedService provides the home feed service.
func ProvideFeedService(i do.Injector) (*service.FeedService, error) {
	catalogHandle := do.MustInvoke[*CatalogClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFeedService(catalogHandle.Client, log.Logger), nil
}

// ProvideWatchlistService provides the watchlist service.
func ProvideWatchlistService(i do.Injector) (*service.WatchlistService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewWatchlistService(storeHandle.Store, log.Logger), nil
}
