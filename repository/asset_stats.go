package repository

import (
	"fmt"
	"time"

	"github.com/camden-git/photocatalog/models"
)

// AssetStats counts an owner's assets by type. The shape is fixed: every
// type is present, zero-filled when absent, so consumers never branch on
// missing keys.
type AssetStats struct {
	Images int64 `json:"images"`
	Videos int64 `json:"videos"`
	Audio  int64 `json:"audio"`
	Other  int64 `json:"other"`
}

// AssetStatsOptions narrows GetStatistics. IsTrashed true switches to
// counting only soft-deleted assets.
type AssetStatsOptions struct {
	IsArchived *bool
	IsFavorite *bool
	IsTrashed  *bool
}

// GetStatistics groups an owner's visible assets by type
func (r *AssetRepository) GetStatistics(ownerID string, opts AssetStatsOptions) (AssetStats, error) {
	tx := r.DB.Model(&models.Asset{}).
		Where("assets.owner_id = ? AND assets.is_visible = ?", ownerID, true)

	if opts.IsArchived != nil {
		tx = tx.Where("assets.is_archived = ?", *opts.IsArchived)
	}
	if opts.IsFavorite != nil {
		tx = tx.Where("assets.is_favorite = ?", *opts.IsFavorite)
	}
	if opts.IsTrashed != nil && *opts.IsTrashed {
		tx = tx.Unscoped().Where("assets.deleted_at IS NOT NULL")
	}

	var rows []struct {
		Type  string
		Count int64
	}
	err := tx.Select("assets.type AS type, COUNT(*) AS count").
		Group("assets.type").
		Scan(&rows).Error
	if err != nil {
		return AssetStats{}, fmt.Errorf("failed to compute statistics for owner %s: %w", ownerID, err)
	}

	var stats AssetStats
	for _, row := range rows {
		switch row.Type {
		case models.AssetTypeImage:
			stats.Images = row.Count
		case models.AssetTypeVideo:
			stats.Videos = row.Count
		case models.AssetTypeAudio:
			stats.Audio = row.Count
		case models.AssetTypeOther:
			stats.Other = row.Count
		}
	}
	return stats, nil
}

// MapMarker is one geotagged asset projected to its coordinates.
type MapMarker struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MapMarkerOptions narrows GetMapMarkers.
type MapMarkerOptions struct {
	IsArchived        *bool
	IsFavorite        *bool
	FileCreatedAfter  *time.Time
	FileCreatedBefore *time.Time
}

// GetMapMarkers projects an owner's visible, geotagged assets to coordinate
// pairs, newest capture first. The inner join requires both coordinates to
// be present; an asset with only one of lat/lon never appears
func (r *AssetRepository) GetMapMarkers(ownerID string, opts MapMarkerOptions) ([]MapMarker, error) {
	tx := r.DB.Model(&models.Asset{}).
		Joins("JOIN exif ON exif.asset_id = assets.id").
		Where("assets.owner_id = ? AND assets.is_visible = ?", ownerID, true).
		Where("exif.latitude IS NOT NULL AND exif.longitude IS NOT NULL")

	if opts.IsArchived != nil {
		tx = tx.Where("assets.is_archived = ?", *opts.IsArchived)
	}
	if opts.IsFavorite != nil {
		tx = tx.Where("assets.is_favorite = ?", *opts.IsFavorite)
	}
	if opts.FileCreatedAfter != nil {
		tx = tx.Where("assets.file_created_at >= ?", opts.FileCreatedAfter.Unix())
	}
	if opts.FileCreatedBefore != nil {
		tx = tx.Where("assets.file_created_at <= ?", opts.FileCreatedBefore.Unix())
	}

	markers := []MapMarker{}
	err := tx.Select("assets.id AS id, exif.latitude AS lat, exif.longitude AS lon").
		Order("assets.file_created_at DESC").
		Scan(&markers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get map markers for owner %s: %w", ownerID, err)
	}
	return markers, nil
}
