package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/ports"
	errorspkg "weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// errorReply is the status and client message for one AppError type.
// An empty message means the error's own message is shown.
type errorReply struct {
	status  int
	message string
}

var errorReplies = map[errorspkg.ErrorType]errorReply{
	errorspkg.ErrorTypeValidation:             {status: http.StatusBadRequest},
	errorspkg.ErrorTypeNotFound:               {status: http.StatusNotFound},
	errorspkg.ErrorTypeDuplicateFavorite:      {status: http.StatusConflict},
	errorspkg.ErrorTypeGeolocationDenied:      {http.StatusForbidden, dashboard.MsgGeolocationDenied},
	errorspkg.ErrorTypeGeolocationUnavailable: {http.StatusUnprocessableEntity, dashboard.MsgGeocodeFailed},
	errorspkg.ErrorTypeFetch:                  {http.StatusBadGateway, dashboard.MsgFetchFailed},
}

const internalErrorMessage = "Internal server error"

// handleError writes err as an ErrorResponse. Unmapped errors are 500s and are logged.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	reply := errorReply{status: http.StatusInternalServerError, message: internalErrorMessage}

	var appErr *errorspkg.AppError
	if errors.As(err, &appErr) {
		if known, ok := errorReplies[appErr.Type]; ok {
			reply = known
			if reply.message == "" {
				reply.message = appErr.Message
			}
		}
	}

	if reply.status >= http.StatusInternalServerError {
		slog.Error("Request failed", "error", err, "request_id", c.GetString(requestIDKey))
	}
	s.writeError(c, reply.status, reply.message)
}

func (s *HTTPServerAdapter) writeError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message, RequestID: c.GetString(requestIDKey)})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")

	metrics, err := s.metrics.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("Error getting metrics", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getHealth handles GET /api/health; any unhealthy component yields 503
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	if s.health == nil {
		c.JSON(http.StatusOK, gin.H{"status": ports.StatusHealthy})
		return
	}

	results := s.health.CheckAll(c.Request.Context())
	status, code := ports.StatusHealthy, http.StatusOK
	if !infrastructure.Healthy(results) {
		status, code = ports.StatusUnhealthy, http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{"status": status, "components": results})
}
