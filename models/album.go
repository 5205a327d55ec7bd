package models

import "gorm.io/gorm"

// Album represents a user-curated collection of assets using GORM.
// It corresponds to the 'albums' table; membership lives in the
// 'album_assets' join table.
type Album struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OwnerID     string         `gorm:"not null;index;type:varchar(36)" json:"owner_id"`
	AlbumName   string         `gorm:"not null" json:"album_name"`
	Description string         `gorm:"not null;default:''" json:"description"`
	SortOrder   string         `gorm:"not null;default:'date_desc'" json:"sort_order"`
	CreatedAt   int64          `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt   int64          `gorm:"not null" json:"updated_at"` // Unix timestamp
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Assets []Asset `gorm:"many2many:album_assets" json:"assets,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Album) TableName() string {
	return "albums"
}
