package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/camden-git/photocatalog/query"
)

// APIErrorDetail represents a single error in the standardized error response.
type APIErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// APIErrorResponse represents the standardized error response body.
type APIErrorResponse struct {
	Errors []APIErrorDetail `json:"errors"`
}

// WriteAPIError writes a standardized error response with the given HTTP status, code, and detail.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	resp := APIErrorResponse{
		Errors: []APIErrorDetail{
			{
				Code:   code,
				Status: strconv.Itoa(httpStatus),
				Detail: detail,
			},
		},
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// writeRepoError maps a repository error to the right HTTP status: catalog
// validation errors are the caller's fault, missing rows are 404, and
// anything else is a store failure the caller may retry.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidAssetType),
		errors.Is(err, query.ErrInvalidBucketSize),
		errors.Is(err, query.ErrInvalidOrder),
		errors.Is(err, query.ErrUnknownProperty),
		errors.Is(err, query.ErrLibraryIDRequired),
		errors.Is(err, query.ErrTrashedRangeRequiresWithDeleted):
		WriteAPIError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		WriteAPIError(w, http.StatusNotFound, "not_found", "record not found")
	default:
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "catalog query failed")
	}
}
