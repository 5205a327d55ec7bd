package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/camden-git/photocatalog/query"
	"github.com/camden-git/photocatalog/repository"
)

// AssetHandler serves catalog queries and mutations for assets
type AssetHandler struct {
	Assets repository.AssetRepositoryInterface
}

// GetAsset returns one asset by id, trashed or not
func (ah *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := ah.Assets.GetByID(chi.URLParam(r, "asset_id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// GetStatistics returns per-type asset counts for an owner
func (ah *AssetHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		WriteAPIError(w, http.StatusBadRequest, "invalid_request", "owner_id is required")
		return
	}
	stats, err := ah.Assets.GetStatistics(ownerID, repository.AssetStatsOptions{
		IsArchived: queryBool(r, "is_archived"),
		IsFavorite: queryBool(r, "is_favorite"),
		IsTrashed:  queryBool(r, "is_trashed"),
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetMapMarkers returns coordinates of an owner's geotagged assets
func (ah *AssetHandler) GetMapMarkers(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		WriteAPIError(w, http.StatusBadRequest, "invalid_request", "owner_id is required")
		return
	}
	markers, err := ah.Assets.GetMapMarkers(ownerID, repository.MapMarkerOptions{
		IsArchived: queryBool(r, "is_archived"),
		IsFavorite: queryBool(r, "is_favorite"),
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, markers)
}

// ScanProperty pages through assets matching a property scan, for job runners
func (ah *AssetHandler) ScanProperty(w http.ResponseWriter, r *http.Request) {
	property := query.AssetProperty(r.URL.Query().Get("property"))
	page, err := ah.Assets.ScanProperty(paginationFromQuery(r), property, query.ScanOptions{
		LibraryID: queryString(r, "library_id"),
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

type assetIDsRequest struct {
	IDs []string `json:"ids"`
}

// TrashAssets soft-deletes a batch of assets
func (ah *AssetHandler) TrashAssets(w http.ResponseWriter, r *http.Request) {
	var req assetIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
		WriteAPIError(w, http.StatusBadRequest, "invalid_request", "ids must be a non-empty array")
		return
	}
	if err := ah.Assets.SoftDeleteAll(req.IDs); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RestoreAssets brings a batch of trashed assets back
func (ah *AssetHandler) RestoreAssets(w http.ResponseWriter, r *http.Request) {
	var req assetIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
		WriteAPIError(w, http.StatusBadRequest, "invalid_request", "ids must be a non-empty array")
		return
	}
	if err := ah.Assets.RestoreAll(req.IDs); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
