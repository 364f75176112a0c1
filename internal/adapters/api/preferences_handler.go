package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/pkg/errors"
)

// ThemeRequest represents a theme toggle
type ThemeRequest struct {
	Theme string `json:"theme" form:"theme" binding:"required,theme"`
}

// UnitRequest represents one unit toggle
type UnitRequest struct {
	Kind  string `json:"kind" form:"kind" binding:"required,oneof=temp wind pressure"`
	Value string `json:"value" form:"value" binding:"required,unit"`
}

type UnitsResponse struct {
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
	Pressure    string `json:"pressure"`
}

// PreferencesResponse represents the applied preferences
type PreferencesResponse struct {
	Theme     string        `json:"theme"`
	Units     UnitsResponse `json:"units"`
	Favorites []string      `json:"favorites"`
}

func toPreferencesResponse(p preferences.Preferences) PreferencesResponse {
	favorites := p.FavoriteCities
	if favorites == nil {
		favorites = []string{}
	}
	return PreferencesResponse{
		Theme: string(p.Theme),
		Units: UnitsResponse{
			Temperature: string(p.Units.Temperature),
			Wind:        string(p.Units.Wind),
			Pressure:    string(p.Units.Pressure),
		},
		Favorites: favorites,
	}
}

// getPreferences handles GET /api/preferences requests
func (s *HTTPServerAdapter) getPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, toPreferencesResponse(s.controller.Preferences()))
}

// setTheme handles PUT /api/preferences/theme requests
func (s *HTTPServerAdapter) setTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Theme binding error", "error", err)
		s.handleError(c, errors.NewValidationError("theme must be one of: light, dark, auto"))
		return
	}

	if err := s.controller.SetTheme(c.Request.Context(), preferences.Theme(req.Theme)); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPreferencesResponse(s.controller.Preferences()))
}

// setUnit handles PUT /api/preferences/units requests
func (s *HTTPServerAdapter) setUnit(c *gin.Context) {
	var req UnitRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Unit binding error", "error", err)
		s.handleError(c, errors.NewValidationError("invalid unit request"))
		return
	}

	if err := s.controller.SetUnit(c.Request.Context(), preferences.UnitKind(req.Kind), req.Value); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPreferencesResponse(s.controller.Preferences()))
}

// addFavorite handles POST /api/favorites; the displayed city is added
func (s *HTTPServerAdapter) addFavorite(c *gin.Context) {
	if err := s.controller.AddFavorite(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPreferencesResponse(s.controller.Preferences()))
}

// removeFavorite handles DELETE /api/favorites/:city requests
func (s *HTTPServerAdapter) removeFavorite(c *gin.Context) {
	if err := s.controller.RemoveFavorite(c.Request.Context(), c.Param("city")); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPreferencesResponse(s.controller.Preferences()))
}
