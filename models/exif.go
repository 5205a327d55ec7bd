package models

// Exif holds metadata extracted from an asset's original file, one row per
// asset. It corresponds to the 'exif' table. Extraction itself happens in the
// media pipeline; this layer only stores and queries the result.
type Exif struct {
	AssetID string `gorm:"primaryKey;type:varchar(36)" json:"asset_id"`

	Latitude  *float64 `gorm:"" json:"latitude,omitempty"`  // Nullable
	Longitude *float64 `gorm:"" json:"longitude,omitempty"` // Nullable
	City      *string  `gorm:"" json:"city,omitempty"`      // Nullable
	State     *string  `gorm:"" json:"state,omitempty"`     // Nullable
	Country   *string  `gorm:"" json:"country,omitempty"`   // Nullable

	Make      *string `gorm:"" json:"make,omitempty"`       // Nullable
	Model     *string `gorm:"" json:"model,omitempty"`      // Nullable
	LensModel *string `gorm:"" json:"lens_model,omitempty"` // Nullable

	ExifImageWidth  *int     `gorm:"" json:"exif_image_width,omitempty"`  // Nullable
	ExifImageHeight *int     `gorm:"" json:"exif_image_height,omitempty"` // Nullable
	FileSizeInByte  *int64   `gorm:"" json:"file_size_in_byte,omitempty"` // Nullable
	Orientation     *string  `gorm:"" json:"orientation,omitempty"`       // Nullable
	ISO             *int     `gorm:"" json:"iso,omitempty"`               // Nullable
	FNumber         *float64 `gorm:"" json:"f_number,omitempty"`          // Nullable
	FocalLength     *float64 `gorm:"" json:"focal_length,omitempty"`      // Nullable
	FPS             *float64 `gorm:"" json:"fps,omitempty"`               // Nullable, videos

	TimeZone     *string `gorm:"" json:"time_zone,omitempty"`      // Nullable, IANA name recorded at capture
	LivePhotoCID *string `gorm:"column:live_photo_cid;index" json:"live_photo_cid,omitempty"` // Nullable, pairs photo and motion part
}

// TableName explicitly sets the table name for GORM.
func (Exif) TableName() string {
	return "exif"
}
