package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status with component checks",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy, degraded, or unhealthy"`
	Latency string `json:"latency,omitempty" doc:"Response time for this component"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy, degraded, or unhealthy"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	components := make(map[string]ComponentHealth)
	overall := "healthy"

	dbHealth := s.checkDatabase()
	components["database"] = dbHealth
	if dbHealth.Status != "healthy" {
		overall = "unhealthy"
	}

	catalogHealth := s.checkCatalog()
	components["catalog"] = catalogHealth
	if catalogHealth.Status == "degraded" && overall == "healthy" {
		overall = "degraded"
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:     overall,
			Components: components,
		},
	}, nil
}

// checkDatabase verifies the Badger store is accessible.
func (s *Server) checkDatabase() ComponentHealth {
	// Handle nil services (e.g., in tests)
	if s.services == nil || s.services.Watchlist == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "watchlist store not configured",
		}
	}

	start := time.Now()
	// Quick read to verify the DB is accessible; an empty watchlist is fine.
	_ = s.services.Watchlist.Count()
	latency := time.Since(start)

	return ComponentHealth{
		Status:  "healthy",
		Latency: latency.String(),
	}
}

// checkCatalog reports whether the catalog client is configured.
// No upstream request is made; health checks should not spend API quota.
func (s *Server) checkCatalog() ComponentHealth {
	if s.catalog == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "catalog client not configured",
		}
	}
	return ComponentHealth{Status: "healthy"}
}
