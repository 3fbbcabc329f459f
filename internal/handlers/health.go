package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	log *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		log: log,
	}
}

// ServeHTTP handles GET /health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}, h.log)
}
