package models

// Library represents an import source for external assets using GORM.
// It corresponds to the 'libraries' table.
type Library struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OwnerID   string `gorm:"not null;index;type:varchar(36)" json:"owner_id"`
	Name      string `gorm:"not null" json:"name"`
	Type      string `gorm:"not null;default:'EXTERNAL'" json:"type"`
	CreatedAt int64  `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64  `gorm:"not null" json:"updated_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (Library) TableName() string {
	return "libraries"
}
