package repository

import (
	"github.com/camden-git/photocatalog/models"
	"github.com/camden-git/photocatalog/query"
)

// ScanProperty pages through the assets matching one property scan (missing
// thumbnail, missing exif, offline markers, ...) for job-queue consumption.
// Results are ordered by ascending creation time so a long backlog drains
// oldest-first and freshly ingested assets cannot displace rows out of pages
// already handed to a job
func (r *AssetRepository) ScanProperty(p Pagination, property query.AssetProperty, opts query.ScanOptions) (AssetPage, error) {
	pred, err := query.BuildScan(property, opts)
	if err != nil {
		return AssetPage{}, err
	}
	tx, err := applyPredicate(r.DB.Model(&models.Asset{}), pred)
	if err != nil {
		return AssetPage{}, err
	}
	return fetchPage(tx.Order("assets.created_at ASC").Order("assets.id ASC"), p)
}
