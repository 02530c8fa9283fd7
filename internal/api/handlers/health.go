package handlers

import (
	"net/http"

	"github.com/rohits-web03/quickdrop/internal/utils"
)

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GET /api/health
// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /api/health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, HealthStatus{Status: "ok", Message: "Server is running"})
}
