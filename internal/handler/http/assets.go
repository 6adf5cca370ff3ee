package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/utils"
	"github.com/MKhiriev/go-asset-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createAsset").Msg("no user ID in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createAsset").Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AssetService.CreateAsset(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAsset").Msg("error creating asset")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listAssets").Msg("no user ID in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	assets, err := h.services.AssetService.GetAllAssets(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAssets").Msg("error listing assets")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, assets, http.StatusOK)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getAsset").Msg("no user ID in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	assetID, err := assetIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAsset").Msg("invalid asset id in URL")
		utils.WriteJSONError(w, "invalid asset id", http.StatusBadRequest)
		return
	}

	asset, err := h.services.AssetService.GetAsset(ctx, userID, assetID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAsset").Int64("asset_id", assetID).Msg("error getting asset")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, asset, http.StatusOK)
}

func (h *Handler) updateAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateAsset").Msg("no user ID in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	assetID, err := assetIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAsset").Msg("invalid asset id in URL")
		utils.WriteJSONError(w, "invalid asset id", http.StatusBadRequest)
		return
	}

	var update models.AssetUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateAsset").Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = assetID

	updated, err := h.services.AssetService.UpdateAsset(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAsset").Int64("asset_id", assetID).Msg("error updating asset")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteAsset").Msg("no user ID in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	assetID, err := assetIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteAsset").Msg("invalid asset id in URL")
		utils.WriteJSONError(w, "invalid asset id", http.StatusBadRequest)
		return
	}

	if err := h.services.AssetService.DeleteAsset(ctx, userID, assetID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAsset").Int64("asset_id", assetID).Msg("error deleting asset")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{Success: true}, http.StatusOK)
}

// assetIDFromURL parses the {id} URL parameter as a positive int64.
func assetIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
