package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/camden-git/photocatalog/models"
	"github.com/camden-git/photocatalog/query"
)

// AssetRepository handles database operations for Asset entities and their
// attached metadata (exif, smart info, job status)
type AssetRepository struct {
	DB *gorm.DB
}

// NewAssetRepository creates a new instance of AssetRepository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{DB: db}
}

// applyPredicate attaches a compiled predicate to a query: scope widening
// first, then joins, then the conditions rendered in a single Where
func applyPredicate(tx *gorm.DB, p query.Predicate) (*gorm.DB, error) {
	if p.WithDeleted {
		tx = tx.Unscoped()
	}
	for _, join := range p.Joins {
		tx = tx.Joins(join)
	}
	sqlStr, args, err := p.ToSql()
	if err != nil {
		return nil, err
	}
	if sqlStr != "" {
		tx = tx.Where(sqlStr, args...)
	}
	return tx, nil
}

// fetchPage runs the query with one extra row to detect a following page
func fetchPage(tx *gorm.DB, p Pagination) (AssetPage, error) {
	limit, offset := p.limitOffset()
	var assets []models.Asset
	if err := tx.Limit(limit + 1).Offset(offset).Find(&assets).Error; err != nil {
		return AssetPage{}, fmt.Errorf("failed to fetch asset page: %w", err)
	}
	page := AssetPage{Assets: assets}
	if len(assets) > limit {
		page.HasNextPage = true
		page.Assets = assets[:limit]
	}
	return page, nil
}

// Create inserts a new asset record, filling in the id and timestamps when
// the caller left them empty
func (r *AssetRepository) Create(asset *models.Asset) error {
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	if asset.CreatedAt == 0 {
		asset.CreatedAt = now
	}
	if asset.UpdatedAt == 0 {
		asset.UpdatedAt = now
	}
	if err := r.DB.Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset %s: %w", asset.ID, err)
	}
	return nil
}

// Save upserts an asset and returns it reloaded with its relations. The
// reload is unscoped: the caller asked for this specific asset and gets it
// back even when it sits in the trash
func (r *AssetRepository) Save(asset *models.Asset) (*models.Asset, error) {
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	asset.UpdatedAt = time.Now().Unix()
	if asset.CreatedAt == 0 {
		asset.CreatedAt = asset.UpdatedAt
	}
	err := r.DB.Unscoped().
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(asset).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save asset %s: %w", asset.ID, err)
	}
	return r.GetByID(asset.ID)
}

// GetByID retrieves a single asset with its relations. Soft-deleted assets
// are returned too; absence is gorm.ErrRecordNotFound, never an empty struct
func (r *AssetRepository) GetByID(id string) (*models.Asset, error) {
	var asset models.Asset
	err := r.DB.Unscoped().
		Preload("Exif").
		Preload("SmartInfo").
		Preload("JobStatus").
		Preload("Faces.Person").
		Preload("StackChildren").
		First(&asset, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get asset by ID %s: %w", id, err)
	}
	return &asset, nil
}

// GetByIDs retrieves multiple assets with their relations, spanning both live
// and trashed rows
func (r *AssetRepository) GetByIDs(ids []string) ([]models.Asset, error) {
	if len(ids) == 0 {
		return []models.Asset{}, nil
	}
	var assets []models.Asset
	err := r.DB.Unscoped().
		Preload("Exif").
		Preload("SmartInfo").
		Preload("JobStatus").
		Preload("Faces.Person").
		Preload("StackChildren").
		Where("id IN ?", ids).
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get assets by ids: %w", err)
	}
	return assets, nil
}

// GetByChecksum finds an owner's asset by its content hash
func (r *AssetRepository) GetByChecksum(ownerID string, checksum []byte) (*models.Asset, error) {
	var asset models.Asset
	err := r.DB.Where("owner_id = ? AND checksum = ?", ownerID, checksum).First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get asset by checksum for owner %s: %w", ownerID, err)
	}
	return &asset, nil
}

// Search runs a predicate-builder query over the catalog, newest capture
// first unless the filter orders otherwise
func (r *AssetRepository) Search(filter query.AssetFilter, p Pagination) (AssetPage, error) {
	pred, err := filter.Build()
	if err != nil {
		return AssetPage{}, err
	}
	tx, err := applyPredicate(r.DB.Model(&models.Asset{}), pred)
	if err != nil {
		return AssetPage{}, err
	}
	if pred.WithExif {
		tx = tx.Preload("Exif")
	}
	if pred.WithPeople {
		tx = tx.Preload("Faces.Person")
	}
	if pred.WithStacked {
		tx = tx.Preload("StackChildren")
	}
	order := "DESC"
	if pred.Order != "" {
		order = pred.Order
	}
	return fetchPage(tx.Order("assets.file_created_at "+order), p)
}

// UserAssetOptions narrows GetByUserID. TrashedBefore selects assets that are
// still in the trash and were deleted before the given time; it implies
// looking past the default soft-delete scope.
type UserAssetOptions struct {
	IsVisible     *bool
	TrashedBefore *time.Time
}

// GetByUserID pages through one owner's assets, exif included
func (r *AssetRepository) GetByUserID(p Pagination, userID string, opts UserAssetOptions) (AssetPage, error) {
	tx := r.DB.Model(&models.Asset{}).
		Preload("Exif").
		Where("assets.owner_id = ?", userID)
	if opts.IsVisible != nil {
		tx = tx.Where("assets.is_visible = ?", *opts.IsVisible)
	}
	if opts.TrashedBefore != nil {
		tx = tx.Unscoped().
			Where("assets.deleted_at IS NOT NULL AND assets.deleted_at < ?", *opts.TrashedBefore)
	}
	return fetchPage(tx.Order("assets.file_created_at DESC"), p)
}

// GetAllOptions narrows GetAll, used by library sync and export jobs.
type GetAllOptions struct {
	IsVisible   *bool
	Type        *string
	WithDeleted bool
	OrderDesc   bool
}

// GetAll pages through the whole catalog ordered by creation time, which
// keeps pages stable while jobs walk a growing table
func (r *AssetRepository) GetAll(p Pagination, opts GetAllOptions) (AssetPage, error) {
	if opts.Type != nil && !models.IsValidAssetType(*opts.Type) {
		return AssetPage{}, fmt.Errorf("%w: %q", query.ErrInvalidAssetType, *opts.Type)
	}
	tx := r.DB.Model(&models.Asset{}).
		Preload("Exif").
		Preload("SmartInfo").
		Preload("Faces.Person")
	if opts.WithDeleted {
		tx = tx.Unscoped()
	}
	if opts.IsVisible != nil {
		tx = tx.Where("assets.is_visible = ?", *opts.IsVisible)
	}
	if opts.Type != nil {
		tx = tx.Where("assets.type = ?", *opts.Type)
	}
	order := "assets.created_at ASC"
	if opts.OrderDesc {
		order = "assets.created_at DESC"
	}
	return fetchPage(tx.Order(order), p)
}

// GetAllByDeviceID returns the device-side ids of all visible assets ever
// uploaded from one device, trashed ones included, for client sync diffing
func (r *AssetRepository) GetAllByDeviceID(ownerID, deviceID string) ([]string, error) {
	var ids []string
	err := r.DB.Unscoped().Model(&models.Asset{}).
		Where("owner_id = ? AND device_id = ? AND is_visible = ?", ownerID, deviceID, true).
		Pluck("device_asset_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list device asset ids for device %s: %w", deviceID, err)
	}
	return ids, nil
}

// GetByLibraryIDAndOriginalPath locates an imported file inside a library
func (r *AssetRepository) GetByLibraryIDAndOriginalPath(libraryID, originalPath string) (*models.Asset, error) {
	var asset models.Asset
	err := r.DB.Where("library_id = ? AND original_path = ?", libraryID, originalPath).First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get asset by path %s in library %s: %w", originalPath, libraryID, err)
	}
	return &asset, nil
}

// GetByDayOfYear returns an owner's visible, thumbnailed assets captured on
// the given calendar day in any year, by the wall clock at capture location
func (r *AssetRepository) GetByDayOfYear(ownerID string, month, day int) ([]models.Asset, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, fmt.Errorf("invalid month/day %d/%d", month, day)
	}
	var assets []models.Asset
	err := r.DB.
		Preload("Exif").
		Where("owner_id = ? AND is_visible = ? AND is_archived = ?", ownerID, true, false).
		Where("resize_path IS NOT NULL AND resize_path != ''").
		Where("CAST(strftime('%m', local_date_time, 'unixepoch') AS INTEGER) = ?", month).
		Where("CAST(strftime('%d', local_date_time, 'unixepoch') AS INTEGER) = ?", day).
		Order("local_date_time DESC").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get assets for day %d/%d: %w", month, day, err)
	}
	return assets, nil
}

// GetRandom returns up to count random assets belonging to an owner
func (r *AssetRepository) GetRandom(ownerID string, count int) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.DB.
		Where("owner_id = ?", ownerID).
		Order("RANDOM()").
		Limit(count).
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get random assets for owner %s: %w", ownerID, err)
	}
	return assets, nil
}

// LivePhotoSearchOptions identifies the motion part of a live photo pair.
type LivePhotoSearchOptions struct {
	OwnerID      string
	OtherAssetID string
	LivePhotoCID string
	Type         string
}

// FindLivePhotoMatch pairs a photo with its motion counterpart via the
// shared content identifier recorded in exif
func (r *AssetRepository) FindLivePhotoMatch(opts LivePhotoSearchOptions) (*models.Asset, error) {
	var asset models.Asset
	err := r.DB.
		Joins("JOIN exif ON exif.asset_id = assets.id").
		Where("assets.id != ? AND assets.owner_id = ? AND assets.type = ? AND exif.live_photo_cid = ?",
			opts.OtherAssetID, opts.OwnerID, opts.Type, opts.LivePhotoCID).
		Preload("Exif").
		First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find live photo match for asset %s: %w", opts.OtherAssetID, err)
	}
	return &asset, nil
}

// UpdateAll applies one set of column updates to all given ids in a single
// statement. The statement spans live and trashed rows; id-addressed bulk
// operations are exempt from the soft-delete scope
func (r *AssetRepository) UpdateAll(ids []string, updates map[string]interface{}) error {
	if len(ids) == 0 || len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().Unix()
	result := r.DB.Unscoped().Model(&models.Asset{}).Where("id IN ?", ids).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update %d assets: %w", len(ids), result.Error)
	}
	return nil
}

// SoftDeleteAll moves the given assets to the trash. Externally imported
// assets are skipped: their lifecycle belongs to the library scanner. One
// statement, so the batch applies atomically or not at all
func (r *AssetRepository) SoftDeleteAll(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	result := r.DB.Where("id IN ? AND is_external = ?", ids, false).Delete(&models.Asset{})
	if result.Error != nil {
		return fmt.Errorf("failed to soft-delete %d assets: %w", len(ids), result.Error)
	}
	return nil
}

// RestoreAll brings trashed assets back to life by clearing deleted_at
func (r *AssetRepository) RestoreAll(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	result := r.DB.Unscoped().Model(&models.Asset{}).
		Where("id IN ?", ids).
		Update("deleted_at", nil)
	if result.Error != nil {
		return fmt.Errorf("failed to restore %d assets: %w", len(ids), result.Error)
	}
	return nil
}

// Remove permanently deletes one asset row
func (r *AssetRepository) Remove(asset *models.Asset) error {
	result := r.DB.Unscoped().Delete(asset)
	if result.Error != nil {
		return fmt.Errorf("failed to remove asset %s: %w", asset.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll permanently deletes every asset belonging to an owner
func (r *AssetRepository) DeleteAll(ownerID string) error {
	err := r.DB.Unscoped().Where("owner_id = ?", ownerID).Delete(&models.Asset{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete assets for owner %s: %w", ownerID, err)
	}
	return nil
}

// UpsertExif writes or replaces the exif record attached to an asset
func (r *AssetRepository) UpsertExif(exif *models.Exif) error {
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}},
		UpdateAll: true,
	}).Create(exif).Error
	if err != nil {
		return fmt.Errorf("failed to upsert exif for asset %s: %w", exif.AssetID, err)
	}
	return nil
}

// UpsertJobStatus writes or replaces an asset's job status record
func (r *AssetRepository) UpsertJobStatus(status *models.AssetJobStatus) error {
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asset_id"}},
		UpdateAll: true,
	}).Create(status).Error
	if err != nil {
		return fmt.Errorf("failed to upsert job status for asset %s: %w", status.AssetID, err)
	}
	return nil
}
