package providers

import (
	"github.com/samber/do/v2"

	"github.com/reelistapp/reelist-server/internal/catalog"
	"github.com/reelistapp/reelist-server/internal/config"
	"github.com/reelistapp/reelist-server/internal/logger"
)

// CatalogClientHandle wraps the catalog client with shutdown capability.
type CatalogClientHandle struct {
	*catalog.Client
}

// Shutdown implements do.Shutdownable.
func (h *CatalogClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideCatalogClient provides the catalog API client.
func ProvideCatalogClient(i do.Injector) (*CatalogClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := catalog.New(catalog.Config{
		BaseURL:           cfg.Catalog.BaseURL,
		APIKey:            cfg.Catalog.APIKey,
		Timeout:           cfg.Catalog.Timeout,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
		Burst:             cfg.Catalog.Burst,
	}, log.Logger)

	if cfg.Catalog.APIKey == "" {
		log.Warn("No catalog API key configured, catalog requests will fail")
	}

	return &CatalogClientHandle{Client: client}, nil
}
