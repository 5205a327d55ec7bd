package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camden-git/photocatalog/database"
	"github.com/camden-git/photocatalog/models"
)

// newTestDB opens an in-memory sqlite database with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying sql.DB: %v", err)
	}
	// a second connection would see its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrateModels(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedAsset inserts a minimal valid asset captured yesterday, with optional
// field overrides applied before the insert.
func seedAsset(t *testing.T, repo *AssetRepository, ownerID string, mutate func(*models.Asset)) *models.Asset {
	t.Helper()
	id := uuid.NewString()
	captured := time.Now().UTC().Add(-24 * time.Hour)
	asset := &models.Asset{
		ID:               id,
		OwnerID:          ownerID,
		DeviceAssetID:    "device-asset-" + id,
		DeviceID:         "device-1",
		Type:             models.AssetTypeImage,
		Checksum:         []byte(id),
		OriginalPath:     "/originals/" + id + ".jpg",
		OriginalFileName: id + ".jpg",
		IsVisible:        true,
		FileCreatedAt:    captured.Unix(),
		FileModifiedAt:   captured.Unix(),
		LocalDateTime:    captured.Unix(),
	}
	if mutate != nil {
		mutate(asset)
	}
	if err := repo.Create(asset); err != nil {
		t.Fatalf("failed to seed asset: %v", err)
	}
	return asset
}

func assetIDs(assets []models.Asset) map[string]bool {
	ids := make(map[string]bool, len(assets))
	for _, a := range assets {
		ids[a.ID] = true
	}
	return ids
}

// localUnix encodes a wall-clock capture time the way local_date_time stores
// it: the clock face read as UTC.
func localUnix(year int, month time.Month, day, hour, min int) int64 {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC).Unix()
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }
