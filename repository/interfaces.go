package repository

import (
	"github.com/camden-git/photocatalog/models"
	"github.com/camden-git/photocatalog/query"
)

// AssetRepositoryInterface defines the catalog's query and mutation surface.
// Callers are job schedulers and API handlers; everything here is a single
// request-scoped unit of work with no cross-call coordination.
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	Save(asset *models.Asset) (*models.Asset, error)
	GetByID(id string) (*models.Asset, error)
	GetByIDs(ids []string) ([]models.Asset, error)
	GetByChecksum(ownerID string, checksum []byte) (*models.Asset, error)
	GetByUserID(p Pagination, userID string, opts UserAssetOptions) (AssetPage, error)
	GetAll(p Pagination, opts GetAllOptions) (AssetPage, error)
	GetAllByDeviceID(ownerID, deviceID string) ([]string, error)
	GetByLibraryIDAndOriginalPath(libraryID, originalPath string) (*models.Asset, error)
	GetByDayOfYear(ownerID string, month, day int) ([]models.Asset, error)
	GetRandom(ownerID string, count int) ([]models.Asset, error)
	FindLivePhotoMatch(opts LivePhotoSearchOptions) (*models.Asset, error)
	Search(filter query.AssetFilter, p Pagination) (AssetPage, error)

	// time-bucketed gallery queries
	GetTimeBuckets(opts query.TimeBucketOptions) ([]TimeBucket, error)
	GetTimeBucket(bucketStart int64, opts query.TimeBucketOptions) ([]models.Asset, error)

	// background-job scans and aggregates
	ScanProperty(p Pagination, property query.AssetProperty, opts query.ScanOptions) (AssetPage, error)
	GetStatistics(ownerID string, opts AssetStatsOptions) (AssetStats, error)
	GetMapMarkers(ownerID string, opts MapMarkerOptions) ([]MapMarker, error)

	// mutations; batch operations apply atomically
	UpdateAll(ids []string, updates map[string]interface{}) error
	SoftDeleteAll(ids []string) error
	RestoreAll(ids []string) error
	Remove(asset *models.Asset) error
	DeleteAll(ownerID string) error
	UpsertExif(exif *models.Exif) error
	UpsertJobStatus(status *models.AssetJobStatus) error
}

// AlbumRepositoryInterface defines the methods for album data operations
type AlbumRepositoryInterface interface {
	Create(album *models.Album) error
	GetByID(id string) (*models.Album, error)
	ListByOwner(ownerID string) ([]models.Album, error)
	Update(albumID string, name *string, description *string, sortOrder *string) error
	AddAssets(albumID string, assetIDs []string) error
	RemoveAssets(albumID string, assetIDs []string) error
	GetAssets(p Pagination, albumID, sortOrder string) (AssetPage, error)
	GetFirstAsset(albumID string) (*models.Asset, error)
	GetLastUpdatedAsset(albumID string) (*models.Asset, error)
	Delete(id string) error
}

// PersonRepositoryInterface defines the methods for person and face data
// operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	GetByID(id string) (*models.Person, error)
	ListByOwner(ownerID string, withHidden bool) ([]models.Person, error)
	UpsertFaces(faces []models.Face) error
	ListFacesByAsset(assetID string) ([]models.Face, error)
}
