package infrastructure

import (
	"context"

	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
)

// DatabaseHealthChecker pings the SQL preference store and reports pool usage
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.NewHealthStatus("database")
	status.Details["connected"] = false

	if d.db == nil {
		status.Fail("database is not configured")
		return status
	}
	status.Details["driver"] = d.db.Dialector.Name()

	pool, err := d.db.DB()
	if err != nil {
		status.Fail("connection pool unavailable: " + err.Error())
		return status
	}
	if err := pool.PingContext(ctx); err != nil {
		status.Fail(err.Error())
		return status
	}

	stats := pool.Stats()
	status.Details["connected"] = true
	status.Details["open_connections"] = stats.OpenConnections
	status.Details["in_use"] = stats.InUse
	return status
}
