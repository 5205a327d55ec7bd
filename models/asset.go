package models

import "gorm.io/gorm"

// Asset type values stored in the assets.type column.
const (
	AssetTypeImage = "IMAGE"
	AssetTypeVideo = "VIDEO"
	AssetTypeAudio = "AUDIO"
	AssetTypeOther = "OTHER"
)

// IsValidAssetType checks if a string is a valid asset type constant
func IsValidAssetType(t string) bool {
	switch t {
	case AssetTypeImage, AssetTypeVideo, AssetTypeAudio, AssetTypeOther:
		return true
	default:
		return false
	}
}

// Asset represents a single catalogued photo, video, audio clip or other file
// using GORM. It corresponds to the 'assets' table.
//
// All timestamps are Unix seconds. LocalDateTime is special: it holds the
// wall-clock capture time at the capture location, re-encoded as if that wall
// clock were UTC. Truncating it in UTC therefore yields the calendar day/month
// the user experienced, regardless of server or viewer timezone. Once set it
// must never be rewritten.
type Asset struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OwnerID       string  `gorm:"not null;index;type:varchar(36)" json:"owner_id"`
	LibraryID     *string `gorm:"index;type:varchar(36)" json:"library_id,omitempty"` // Nullable
	DeviceAssetID string  `gorm:"not null;index:idx_assets_device,priority:2" json:"device_asset_id"`
	DeviceID      string  `gorm:"not null;index:idx_assets_device,priority:1" json:"device_id"`

	Type     string `gorm:"not null" json:"type"`
	Checksum []byte `gorm:"not null;index" json:"-"` // content hash of the original file

	OriginalPath     string  `gorm:"not null" json:"original_path"`
	OriginalFileName string  `gorm:"not null" json:"original_file_name"`
	ResizePath       *string `gorm:"" json:"resize_path,omitempty"`        // Nullable; '' also means missing
	WebpPath         *string `gorm:"" json:"webp_path,omitempty"`          // Nullable; '' also means missing
	EncodedVideoPath *string `gorm:"" json:"encoded_video_path,omitempty"` // Nullable; '' also means missing
	SidecarPath      *string `gorm:"" json:"sidecar_path,omitempty"`       // Nullable; '' also means missing
	Thumbhash        []byte  `gorm:"" json:"-"`                            // Nullable

	IsVisible  bool `gorm:"not null;default:true" json:"is_visible"`
	IsFavorite bool `gorm:"not null;default:false" json:"is_favorite"`
	IsArchived bool `gorm:"not null;default:false" json:"is_archived"`
	IsExternal bool `gorm:"not null;default:false" json:"is_external"`
	IsOffline  bool `gorm:"not null;default:false" json:"is_offline"`
	IsReadOnly bool `gorm:"not null;default:false" json:"is_read_only"`

	Duration *string `gorm:"" json:"duration,omitempty"` // Nullable, videos only

	CreatedAt int64          `gorm:"not null;index" json:"created_at"` // Unix timestamp
	UpdatedAt int64          `gorm:"not null" json:"updated_at"`       // Unix timestamp
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	FileCreatedAt  int64 `gorm:"not null;index" json:"file_created_at"` // capture time, server clock
	FileModifiedAt int64 `gorm:"not null" json:"file_modified_at"`      // Unix timestamp
	LocalDateTime  int64 `gorm:"not null;index" json:"local_date_time"` // wall-clock capture time, see doc above

	StackParentID    *string `gorm:"index;type:varchar(36)" json:"stack_parent_id,omitempty"` // Nullable self-reference
	LivePhotoVideoID *string `gorm:"type:varchar(36)" json:"live_photo_video_id,omitempty"`   // Nullable

	// Relationships
	Owner         *User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Exif          *Exif           `gorm:"foreignKey:AssetID" json:"exif,omitempty"`
	SmartInfo     *SmartInfo      `gorm:"foreignKey:AssetID" json:"smart_info,omitempty"`
	JobStatus     *AssetJobStatus `gorm:"foreignKey:AssetID" json:"job_status,omitempty"`
	Faces         []Face          `gorm:"foreignKey:AssetID" json:"faces,omitempty"`
	Albums        []Album         `gorm:"many2many:album_assets" json:"albums,omitempty"`
	StackChildren []Asset         `gorm:"foreignKey:StackParentID" json:"stack_children,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Asset) TableName() string {
	return "assets"
}

// HasThumbnail reports whether a generated thumbnail is present. An empty
// string is treated the same as NULL.
func (a *Asset) HasThumbnail() bool {
	return a.ResizePath != nil && *a.ResizePath != ""
}

// IsTrashed reports whether the asset is soft-deleted.
func (a *Asset) IsTrashed() bool {
	return a.DeletedAt.Valid
}
