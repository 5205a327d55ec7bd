package handlers

import (
	"net/http"
	"strconv"

	"github.com/camden-git/photocatalog/query"
	"github.com/camden-git/photocatalog/repository"
)

// TimelineHandler serves the time-bucketed gallery endpoints
type TimelineHandler struct {
	Assets repository.AssetRepositoryInterface
}

func timeBucketOptionsFromQuery(r *http.Request) query.TimeBucketOptions {
	q := r.URL.Query()
	opts := query.TimeBucketOptions{
		Size:        q.Get("size"),
		AlbumID:     queryString(r, "album_id"),
		PersonID:    queryString(r, "person_id"),
		IsArchived:  queryBool(r, "is_archived"),
		IsFavorite:  queryBool(r, "is_favorite"),
		IsTrashed:   queryBool(r, "is_trashed"),
		WithStacked: q.Get("with_stacked") == "true",
	}
	if owner := q.Get("owner_id"); owner != "" {
		opts.UserIDs = []string{owner}
	}
	return opts
}

// GetTimeBuckets returns the bucket index for an infinite-scroll gallery
func (th *TimelineHandler) GetTimeBuckets(w http.ResponseWriter, r *http.Request) {
	buckets, err := th.Assets.GetTimeBuckets(timeBucketOptionsFromQuery(r))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

// GetTimeBucket returns the assets inside one bucket
func (th *TimelineHandler) GetTimeBucket(w http.ResponseWriter, r *http.Request) {
	bucketStart, err := strconv.ParseInt(r.URL.Query().Get("bucket_start"), 10, 64)
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "invalid_request", "bucket_start must be a Unix timestamp")
		return
	}
	assets, err := th.Assets.GetTimeBucket(bucketStart, timeBucketOptionsFromQuery(r))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}
