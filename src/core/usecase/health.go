package usecase

import (
	"context"
	"log/slog"
	"sort"

	"jokecatalog/src/core/ports"
)

// HealthService handles health check logic.
// It pings every registered component and reports the overall status.
type HealthService struct {
	log        *slog.Logger
	components map[string]ports.Repository
}

// NewHealthService creates a new HealthService.
// components maps a display name (e.g., "database") to the dependency to ping.
func NewHealthService(log *slog.Logger, components map[string]ports.Repository) *HealthService {
	if components == nil {
		components = map[string]ports.Repository{}
	}
	return &HealthService{
		log:        log,
		components: components,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
// The overall status is "degraded" as soon as one component fails.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth, len(s.components)),
	}

	names := make([]string, 0, len(s.components))
	for name := range s.components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.components[name].Health(ctx); err != nil {
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			if s.log != nil {
				s.log.WarnContext(ctx, "health check failed", "component", name, "error", err)
			}
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}
