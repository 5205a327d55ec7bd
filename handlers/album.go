package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/camden-git/photocatalog/repository"
)

// AlbumHandler serves album asset listings
type AlbumHandler struct {
	Albums repository.AlbumRepositoryInterface
}

// GetAlbumAssets pages through an album's assets in the requested sort order
func (ah *AlbumHandler) GetAlbumAssets(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "album_id")
	page, err := ah.Albums.GetAssets(paginationFromQuery(r), albumID, r.URL.Query().Get("sort"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
