package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-asset-keeper/internal/utils"
	"github.com/MKhiriev/go-asset-keeper/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{
		Message:   "Asset Keeper API",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
