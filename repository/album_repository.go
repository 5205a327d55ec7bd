package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/facette/natsort"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/camden-git/photocatalog/database"
	"github.com/camden-git/photocatalog/models"
)

// AlbumRepository handles database operations for Album entities
type AlbumRepository struct {
	DB *gorm.DB
}

// NewAlbumRepository creates a new instance of AlbumRepository
func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{DB: db}
}

// Create creates a new album record in the database
func (r *AlbumRepository) Create(album *models.Album) error {
	if album.ID == "" {
		album.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	if album.CreatedAt == 0 {
		album.CreatedAt = now
	}
	if album.UpdatedAt == 0 {
		album.UpdatedAt = now
	}
	if album.SortOrder == "" {
		album.SortOrder = database.DefaultSortOrder
	}
	if !database.IsValidSortOrder(album.SortOrder) {
		return fmt.Errorf("invalid sort order: %s", album.SortOrder)
	}
	if err := r.DB.Create(album).Error; err != nil {
		return fmt.Errorf("failed to create album %s: %w", album.AlbumName, err)
	}
	return nil
}

// GetByID retrieves an album by its ID
func (r *AlbumRepository) GetByID(id string) (*models.Album, error) {
	var album models.Album
	err := r.DB.First(&album, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get album by ID %s: %w", id, err)
	}
	return &album, nil
}

// ListByOwner retrieves all of an owner's albums, most recently updated first
func (r *AlbumRepository) ListByOwner(ownerID string) ([]models.Album, error) {
	var albums []models.Album
	err := r.DB.Where("owner_id = ?", ownerID).Order("updated_at DESC").Find(&albums).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list albums for owner %s: %w", ownerID, err)
	}
	return albums, nil
}

// Update updates an album's name, description and sort order
func (r *AlbumRepository) Update(albumID string, name *string, description *string, sortOrder *string) error {
	updates := map[string]interface{}{
		"updated_at": time.Now().Unix(),
	}
	if name != nil {
		updates["album_name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}
	if sortOrder != nil {
		if !database.IsValidSortOrder(*sortOrder) {
			return fmt.Errorf("invalid sort order: %s", *sortOrder)
		}
		updates["sort_order"] = *sortOrder
	}

	// if only updated_at is present, no actual fields were changed
	if len(updates) == 1 {
		return nil
	}

	result := r.DB.Model(&models.Album{}).Where("id = ?", albumID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update album ID %s: %w", albumID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddAssets attaches assets to an album
func (r *AlbumRepository) AddAssets(albumID string, assetIDs []string) error {
	if len(assetIDs) == 0 {
		return nil
	}
	album := models.Album{ID: albumID}
	assets := make([]models.Asset, len(assetIDs))
	for i, id := range assetIDs {
		assets[i] = models.Asset{ID: id}
	}
	if err := r.DB.Model(&album).Association("Assets").Append(&assets); err != nil {
		return fmt.Errorf("failed to add %d assets to album %s: %w", len(assetIDs), albumID, err)
	}
	return r.touch(albumID)
}

// RemoveAssets detaches assets from an album
func (r *AlbumRepository) RemoveAssets(albumID string, assetIDs []string) error {
	if len(assetIDs) == 0 {
		return nil
	}
	album := models.Album{ID: albumID}
	assets := make([]models.Asset, len(assetIDs))
	for i, id := range assetIDs {
		assets[i] = models.Asset{ID: id}
	}
	if err := r.DB.Model(&album).Association("Assets").Delete(&assets); err != nil {
		return fmt.Errorf("failed to remove %d assets from album %s: %w", len(assetIDs), albumID, err)
	}
	return r.touch(albumID)
}

func (r *AlbumRepository) touch(albumID string) error {
	err := r.DB.Model(&models.Album{}).Where("id = ?", albumID).
		Update("updated_at", time.Now().Unix()).Error
	if err != nil {
		return fmt.Errorf("failed to touch album %s: %w", albumID, err)
	}
	return nil
}

// GetAssets pages through an album's assets in the requested sort order.
// Natural filename order cannot be expressed in SQL, so that variant sorts
// the fetched page in process
func (r *AlbumRepository) GetAssets(p Pagination, albumID, sortOrder string) (AssetPage, error) {
	if sortOrder == "" {
		sortOrder = database.DefaultSortOrder
	}
	if !database.IsValidSortOrder(sortOrder) {
		return AssetPage{}, fmt.Errorf("invalid sort order: %s", sortOrder)
	}

	tx := r.DB.Model(&models.Asset{}).
		Joins("JOIN album_assets ON album_assets.asset_id = assets.id").
		Where("album_assets.album_id = ?", albumID).
		Preload("Exif")

	switch sortOrder {
	case database.SortDateAsc:
		tx = tx.Order("assets.file_created_at ASC")
	case database.SortFilenameAsc, database.SortFilenameNat:
		tx = tx.Order("assets.original_file_name ASC")
	default:
		tx = tx.Order("assets.file_created_at DESC")
	}

	page, err := fetchPage(tx, p)
	if err != nil {
		return AssetPage{}, err
	}
	if sortOrder == database.SortFilenameNat {
		sortAssetsNaturally(page.Assets)
	}
	return page, nil
}

// sortAssetsNaturally reorders assets so numbered filenames sort the way a
// human expects (img2 before img10)
func sortAssetsNaturally(assets []models.Asset) {
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.OriginalFileName
	}
	natsort.Sort(names)
	rank := make(map[string]int, len(names))
	for i, name := range names {
		if _, seen := rank[name]; !seen {
			rank[name] = i
		}
	}
	sort.SliceStable(assets, func(i, j int) bool {
		return rank[assets[i].OriginalFileName] < rank[assets[j].OriginalFileName]
	})
}

// GetFirstAsset returns the album's newest asset by capture time, used for
// cover selection
func (r *AlbumRepository) GetFirstAsset(albumID string) (*models.Asset, error) {
	var asset models.Asset
	err := r.DB.
		Joins("JOIN album_assets ON album_assets.asset_id = assets.id").
		Where("album_assets.album_id = ?", albumID).
		Order("assets.file_created_at DESC").
		First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get first asset for album %s: %w", albumID, err)
	}
	return &asset, nil
}

// GetLastUpdatedAsset returns the album's most recently modified asset
func (r *AlbumRepository) GetLastUpdatedAsset(albumID string) (*models.Asset, error) {
	var asset models.Asset
	err := r.DB.
		Joins("JOIN album_assets ON album_assets.asset_id = assets.id").
		Where("album_assets.album_id = ?", albumID).
		Order("assets.updated_at DESC").
		First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get last updated asset for album %s: %w", albumID, err)
	}
	return &asset, nil
}

// Delete soft-deletes an album by its ID
func (r *AlbumRepository) Delete(id string) error {
	result := r.DB.Delete(&models.Album{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete album ID %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
