package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// SearchRequest represents a city search from the search box
type SearchRequest struct {
	City string `json:"city" form:"city" binding:"required"`
}

// GeolocateRequest carries either a position fix or the reason none could be obtained
type GeolocateRequest struct {
	Lat   *float64 `json:"lat" form:"lat" binding:"omitempty,latitude"`
	Lon   *float64 `json:"lon" form:"lon" binding:"omitempty,longitude"`
	Error string   `json:"error" form:"error" binding:"omitempty,oneof=denied unavailable"`
}

// getDashboard handles GET /api/dashboard requests
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshots.Snapshot())
}

// search handles POST /api/search requests
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Search binding error", "error", err)
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	slog.Debug("Searching weather", "city", req.City)

	if err := s.controller.Search(c.Request.Context(), req.City); err != nil {
		slog.Warn("Search failed", "error", err, "city", req.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.snapshots.Snapshot())
}

// selectFavorite handles POST /api/favorites/:city/select requests
func (s *HTTPServerAdapter) selectFavorite(c *gin.Context) {
	city := c.Param("city")

	if err := s.controller.QuickSelect(c.Request.Context(), city); err != nil {
		slog.Warn("Quick select failed", "error", err, "city", city)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.snapshots.Snapshot())
}

// geolocate handles POST /api/geolocate requests
func (s *HTTPServerAdapter) geolocate(c *gin.Context) {
	var req GeolocateRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Geolocate binding error", "error", err)
		s.handleError(c, errors.NewValidationError("invalid geolocation request"))
		return
	}

	ctx := c.Request.Context()
	var err error
	switch {
	case req.Error != "":
		err = s.controller.GeolocationFailed(ctx, dashboard.GeolocationFailure(req.Error))
	case req.Lat == nil || req.Lon == nil:
		err = errors.NewValidationError("lat and lon are required")
	default:
		err = s.controller.Geolocate(ctx, ports.Coordinates{Lat: *req.Lat, Lon: *req.Lon})
	}

	if err != nil {
		slog.Warn("Geolocation failed", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.snapshots.Snapshot())
}
