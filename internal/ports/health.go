package ports

import "context"

// Health status values reported by checkers
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker reports the state of one dependency of the dashboard
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is one component's entry in the /api/health response
type HealthStatus struct {
	Component string         `json:"component"`
	Status    string         `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Fail marks the status unhealthy with reason
func (s *HealthStatus) Fail(reason string) {
	s.Status = StatusUnhealthy
	s.Error = reason
}

// NewHealthStatus returns a healthy status for component with empty details
func NewHealthStatus(component string) HealthStatus {
	return HealthStatus{Component: component, Status: StatusHealthy, Details: map[string]any{}}
}

// SystemHealthChecker runs every registered checker
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}
