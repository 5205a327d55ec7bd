package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/camden-git/photocatalog/models"
	"github.com/camden-git/photocatalog/query"
)

func scanIDs(t *testing.T, repo *AssetRepository, property query.AssetProperty, opts query.ScanOptions) map[string]bool {
	t.Helper()
	page, err := repo.ScanProperty(Pagination{}, property, opts)
	if err != nil {
		t.Fatalf("ScanProperty(%s) error = %v", property, err)
	}
	return assetIDs(page.Assets)
}

func TestScanProperty_Thumbnail(t *testing.T) {
	repo := NewAssetRepository(newTestDB(t))
	owner := "owner-1"

	nilPath := seedAsset(t, repo, owner, nil)
	emptyPath := seedAsset(t, repo, owner, func(a *models.Asset) {
		a.ResizePath = strPtr("")
		a.WebpPath = strPtr("/webp/x.webp")
		a.Thumbhash = []byte{1, 2, 3}
	})
	noHash := seedAsset(t, repo, owner, func(a *models.Asset) {
		a.ResizePath = strPtr("/thumbs/x.jpg")
		a.WebpPath = strPtr("/webp/x.webp")
	})
	complete := seedAsset(t, repo, owner, func(a *models.Asset) {
		a.ResizePath = strPtr("/thumbs/y.jpg")
		a.WebpPath = strPtr("/webp/y.webp")
		a.Thumbhash = []byte{4, 5, 6}
	})

	ids := scanIDs(t, repo, query.PropertyThumbnail, query.ScanOptions{})
	for _, want := range []*models.Asset{nilPath, emptyPath, noHash} {
		if !ids[want.ID] {
			t.Errorf("asset %s should be missing a thumbnail artifact", want.ID)
		}
	}
	if ids[complete.ID] {
		t.Error("fully thumbnailed asset should not be rescanned")
	}
}

func TestScanProperty_EncodedVideo(t *testing.T) {
	repo := NewAssetRepository(newTestDB(t))
	owner := "owner-1"

	pending := seedAsset(t, repo, owner, func(a *models.Asset) {
		a.Type = models.AssetTypeVideo
	})
	emptyPath := seedAsset(t, repo, owner, func(a *models.Asset) {
		a.Type = models.AssetTypeVideo
		a.EncodedVideoPath = strPtr("")
	})
	done := seedAsset(t, repo, owner, func(a *models.Asset) {
		a.Type = models.AssetTypeVideo
		a.EncodedVideoPath = strPtr("/encoded/x.mp4")
	})
	image := seedAsset(t, repo, owner, nil)

	ids := scanIDs(t, repo, query.PropertyEncodedVideo, query.ScanOptions{})
	if !ids[pending.ID] || !ids[emptyPath.ID] {
		t.Errorf("unencoded videos missing from scan: %v", ids)
	}
	if ids[done.ID] {
		t.Error("already encoded video should not be rescanned")
	}
	if ids[image.ID] {
		t.Error("images never need video encoding")
	}
}

func TestScanProperty_Exif(t *testing.T) {
	repo := NewAssetRepository(newTestDB(t))
	owner := "owner-1"

	pending := seedAsset(t, repo, owner, nil)
	extracted := seedAsset(t, repo, owner, nil)
	if err := repo.UpsertExif(&models.Exif{AssetID: extracted.ID}); err != nil {
		t.Fatalf("UpsertExif() error = %v", err)
	}

	ids := scanIDs(t, repo, query.PropertyExif, query.ScanOptions{})
	if !ids[pending.ID] {
		t.Error("asset without an exif row should be scanned")
	}
	if ids[extracted.ID] {
		t.Error("asset with an exif row should not be rescanned")
	}
}

func TestScanProperty_Embedding(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssetRepository(db)
	owner := "owner-1"
	thumbed := func(a *models.Asset) {
		a.ResizePath = strPtr("/thumbs/" + a.ID + ".jpg")
	}

	pending := seedAsset(t, repo, owner, thumbed)
	embedded := seedAsset(t, repo, owner, thumbed)
	noThumb := seedAsset(t, repo, owner, nil)
	noRow := seedAsset(t, repo, owner, thumbed)

	for _, info := range []models.SmartInfo{
		{AssetID: pending.ID},
		{AssetID: embedded.ID, ClipEmbedding: []byte{1, 2}},
		{AssetID: noThumb.ID},
	} {
		if err := db.Create(&info).Error; err != nil {
			t.Fatalf("failed to seed smart info: %v", err)
		}
	}

	ids := scanIDs(t, repo, query.PropertyEmbedding, query.ScanOptions{})
	if !ids[pending.ID] {
		t.Error("asset with a NULL embedding should be scanned")
	}
	if ids[embedded.ID] {
		t.Error("embedded asset should not be rescanned")
	}
	if ids[noThumb.ID] {
		t.Error("embedding needs a thumbnail first")
	}
	if ids[noRow.ID] {
		t.Error("assets without a smart info row belong to a different queue")
	}
}

func TestScanProperty_Faces(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssetRepository(db)
	people := NewPersonRepository(db)
	owner := "owner-1"
	thumbed := func(a *models.Asset) {
		a.ResizePath = strPtr("/thumbs/" + a.ID + ".jpg")
	}

	pending := seedAsset(t, repo, owner, thumbed)
	detected := seedAsset(t, repo, owner, thumbed)
	faceless := seedAsset(t, repo, owner, thumbed)

	if err := people.UpsertFaces([]models.Face{{AssetID: detected.ID, X1: 0, Y1: 0, X2: 5, Y2: 5}}); err != nil {
		t.Fatalf("UpsertFaces() error = %v", err)
	}
	// processed, zero faces found: must not be re-enqueued
	err := repo.UpsertJobStatus(&models.AssetJobStatus{
		AssetID:           faceless.ID,
		FacesRecognizedAt: int64Ptr(time.Now().Unix()),
	})
	if err != nil {
		t.Fatalf("UpsertJobStatus() error = %v", err)
	}

	ids := scanIDs(t, repo, query.PropertyFaces, query.ScanOptions{})
	if !ids[pending.ID] {
		t.Error("unprocessed asset should be scanned")
	}
	if ids[detected.ID] {
		t.Error("asset with stored faces should not be rescanned")
	}
	if ids[faceless.ID] {
		t.Error("asset confirmed to hold no faces should not be re-enqueued")
	}
}

func TestScanProperty_Sidecar(t *testing.T) {
	repo := NewAssetRepository(newTestDB(t))
	owner := "owner-1"
	bare := seedAsset(t, repo, owner, nil)
	withSidecar := seedAsset(t, repo, owner, func(a *models.Asset) {
		a.SidecarPath = strPtr("/originals/x.xmp")
	})

	missing := scanIDs(t, repo, query.PropertySidecar, query.ScanOptions{})
	if !missing[bare.ID] || missing[withSidecar.ID] {
		t.Errorf("sidecar scan = %v, want only %s", missing, bare.ID)
	}

	present := scanIDs(t, repo, query.PropertySidecarPresent, query.ScanOptions{})
	if !present[withSidecar.ID] || present[bare.ID] {
		t.Errorf("sidecar-present scan = %v, want only %s", present, withSidecar.ID)
	}
}

func TestScanProperty_OfflineMarker(t *testing.T) {
	repo := NewAssetRepository(newTestDB(t))
	owner := "owner-1"
	libID := "library-1"
	otherLib := "library-2"

	offline := seedAsset(t, repo, owner, func(a *models.Asset) {
		a.LibraryID = &libID
		a.IsOffline = true
	})
	seedAsset(t, repo, owner, func(a *models.Asset) {
		a.LibraryID = &libID
	})
	elsewhere := seedAsset(t, repo, owner, func(a *models.Asset) {
		a.LibraryID = &otherLib
		a.IsOffline = true
	})

	_, err := repo.ScanProperty(Pagination{}, query.PropertyOfflineMarker, query.ScanOptions{})
	if !errors.Is(err, query.ErrLibraryIDRequired) {
		t.Fatalf("ScanProperty without library error = %v, want ErrLibraryIDRequired", err)
	}

	ids := scanIDs(t, repo, query.PropertyOfflineMarker, query.ScanOptions{LibraryID: &libID})
	if len(ids) != 1 || !ids[offline.ID] {
		t.Errorf("offline scan = %v, want only %s", ids, offline.ID)
	}
	if ids[elsewhere.ID] {
		t.Error("offline markers from another library must not leak in")
	}
}

func TestScanProperty_UnknownProperty(t *testing.T) {
	repo := NewAssetRepository(newTestDB(t))
	_, err := repo.ScanProperty(Pagination{}, query.AssetProperty("palette"), query.ScanOptions{})
	if !errors.Is(err, query.ErrUnknownProperty) {
		t.Errorf("ScanProperty(palette) error = %v, want ErrUnknownProperty", err)
	}
}

func TestScanProperty_DrainsOldestFirst(t *testing.T) {
	repo := NewAssetRepository(newTestDB(t))
	owner := "owner-1"
	base := time.Now().UTC().Add(-72 * time.Hour).Unix()

	var seeded []*models.Asset
	for i := 0; i < 3; i++ {
		offset := int64(i * 3600)
		seeded = append(seeded, seedAsset(t, repo, owner, func(a *models.Asset) {
			a.CreatedAt = base + offset
			a.UpdatedAt = base + offset
		}))
	}

	page, err := repo.ScanProperty(Pagination{Page: 1, Size: 2}, query.PropertyThumbnail, query.ScanOptions{})
	if err != nil {
		t.Fatalf("ScanProperty() error = %v", err)
	}
	if len(page.Assets) != 2 || !page.HasNextPage {
		t.Fatalf("page 1 = %d assets, HasNextPage %v; want 2, true", len(page.Assets), page.HasNextPage)
	}
	if page.Assets[0].ID != seeded[0].ID || page.Assets[1].ID != seeded[1].ID {
		t.Errorf("scan should drain oldest first, got %s, %s", page.Assets[0].ID, page.Assets[1].ID)
	}

	page, err = repo.ScanProperty(Pagination{Page: 2, Size: 2}, query.PropertyThumbnail, query.ScanOptions{})
	if err != nil {
		t.Fatalf("ScanProperty(page 2) error = %v", err)
	}
	if len(page.Assets) != 1 || page.HasNextPage {
		t.Fatalf("page 2 = %d assets, HasNextPage %v; want 1, false", len(page.Assets), page.HasNextPage)
	}
	if page.Assets[0].ID != seeded[2].ID {
		t.Errorf("page 2 = %s, want %s", page.Assets[0].ID, seeded[2].ID)
	}
}
