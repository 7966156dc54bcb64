package handlers

import "net/http"

// HealthResponse is returned by the health check
// swagger:model HealthResponse
type HealthResponse struct {
	// default: Service running
	Message string `json:"Message"`
}

// NewHealthHandler returns the liveness handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Message: "Service running"})
	}
}
