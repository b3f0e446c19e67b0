package services

import (
	"context"

	"vivopizza/internal/domain"
)

// HealthResult is the liveness payload served on "/" and "/health".
type HealthResult struct {
	Status  string   `json:"status"`
	Service string   `json:"service"`
	Regions []string `json:"regions"`
}

// DiagnosticResult is the payload served on "/test".
type DiagnosticResult struct {
	Backend string   `json:"backend"`
	Regions []string `json:"regions"`
}

// HealthService implements the health service
type HealthService struct {
	service string
	regions domain.Regions
}

// NewHealthService creates a new health service
func NewHealthService(service string, regions domain.Regions) *HealthService {
	return &HealthService{service: service, regions: regions}
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) *HealthResult {
	return &HealthResult{
		Status:  "ok",
		Service: s.service,
		Regions: s.regions.List(),
	}
}

// Diagnostic reports that the backend process is running.
func (s *HealthService) Diagnostic(ctx context.Context) *DiagnosticResult {
	return &DiagnosticResult{
		Backend: "running",
		Regions: s.regions.List(),
	}
}
