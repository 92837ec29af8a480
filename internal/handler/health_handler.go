package handler

import (
	"log/slog"
	"net/http"

	"github.com/lunchly/lunchly-backend/internal/db"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db     *db.DB
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(database *db.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     database,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string),
	}

	if err := h.db.Health(r.Context()); err != nil {
		h.logger.Error("database health check failed", slog.String("error", err.Error()))
		response.Status = "unhealthy"
		response.Services["database"] = "unhealthy"
	} else {
		response.Services["database"] = "healthy"
	}

	if response.Status == "healthy" {
		respondSuccess(w, response)
	} else {
		respondJSON(w, http.StatusServiceUnavailable, response)
	}
}
