package handlers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/rohits-web03/quickdrop/internal/charts"
	"github.com/rohits-web03/quickdrop/internal/repositories"
	"github.com/rohits-web03/quickdrop/internal/stats"
)

// GET /dashboard
// Dashboard godoc
// @Summary Chart page
// @Description Renders file type, daily volume and outcome charts over the latest 100 transfers.
// @Tags Dashboard
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "Storage failure"
// @Router /dashboard [get]
func (h *LogHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListRecent(r.Context(), repositories.RecentLimit)
	if err != nil {
		log.Printf("Error fetching logs for dashboard: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, stats.Build(events, h.now())); err != nil {
		log.Printf("Error rendering dashboard: %v", err)
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
