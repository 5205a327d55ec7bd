package repository

import (
	"fmt"

	"github.com/camden-git/photocatalog/models"
	"github.com/camden-git/photocatalog/query"
)

// TimeBucket is one non-empty calendar bucket: the Unix timestamp of its
// local midnight (day) or first-of-month midnight, and how many assets fall
// inside it.
type TimeBucket struct {
	BucketStart int64 `json:"bucket_start"`
	Count       int   `json:"count"`
}

// GetTimeBuckets computes the per-bucket asset counts for an infinite-scroll
// gallery, newest bucket first. Buckets partition the matching assets: the
// same predicate drives this count query and GetTimeBucket, so the sum of
// counts always equals the total the bucket fetches return
func (r *AssetRepository) GetTimeBuckets(opts query.TimeBucketOptions) ([]TimeBucket, error) {
	expr, err := query.DateTruncExpr(opts.Size)
	if err != nil {
		return nil, err
	}
	pred, err := opts.Build()
	if err != nil {
		return nil, err
	}
	tx, err := applyPredicate(r.DB.Model(&models.Asset{}), pred)
	if err != nil {
		return nil, err
	}

	countExpr := "COUNT(assets.id)"
	if pred.Distinct {
		countExpr = "COUNT(DISTINCT assets.id)"
	}

	var buckets []TimeBucket
	err = tx.
		Select(expr + " AS bucket_start, " + countExpr + " AS count").
		Group(expr).
		Order(expr + " DESC").
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute time buckets: %w", err)
	}
	return buckets, nil
}

// GetTimeBucket fetches the full ordered content of one bucket. Primary sort
// is the truncated value itself, which is constant within a bucket but pins
// the order should a truncation edge case ever leak through; the real
// ordering comes from the capture timestamp
func (r *AssetRepository) GetTimeBucket(bucketStart int64, opts query.TimeBucketOptions) ([]models.Asset, error) {
	expr, err := query.DateTruncExpr(opts.Size)
	if err != nil {
		return nil, err
	}
	pred, err := opts.Build()
	if err != nil {
		return nil, err
	}
	tx, err := applyPredicate(r.DB.Model(&models.Asset{}), pred)
	if err != nil {
		return nil, err
	}
	if pred.Distinct {
		tx = tx.Distinct("assets.*")
	}

	var assets []models.Asset
	err = tx.
		Where(expr+" = ?", bucketStart).
		Preload("Exif").
		Preload("StackChildren").
		Order(expr + " DESC").
		Order("assets.file_created_at DESC").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time bucket %d: %w", bucketStart, err)
	}
	return assets, nil
}
