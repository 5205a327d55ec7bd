package models

// Person represents a recognized person in the database using GORM.
// It corresponds to the 'people' table.
type Person struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OwnerID     string `gorm:"not null;index;type:varchar(36)" json:"owner_id"`
	Name        string `gorm:"not null;default:''" json:"name"`
	FaceAssetID string `gorm:"not null;default:''" json:"face_asset_id"` // asset used for the cover crop
	IsHidden    bool   `gorm:"not null;default:false" json:"is_hidden"`
	CreatedAt   int64  `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt   int64  `gorm:"not null" json:"updated_at"` // Unix timestamp

	Faces []Face `gorm:"foreignKey:PersonID" json:"faces,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "people"
}
