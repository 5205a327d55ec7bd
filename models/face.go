package models

// Face represents a detected face region in an asset, optionally linked to a
// person, using GORM. It corresponds to the 'faces' table.
type Face struct {
	ID       string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AssetID  string  `gorm:"not null;index;type:varchar(36)" json:"asset_id"`
	PersonID *string `gorm:"index;type:varchar(36)" json:"person_id,omitempty"` // Nullable until recognized

	X1 int `gorm:"not null" json:"x1"`
	Y1 int `gorm:"not null" json:"y1"`
	X2 int `gorm:"not null" json:"x2"`
	Y2 int `gorm:"not null" json:"y2"`

	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"` // Belongs to Person
}

// TableName explicitly sets the table name for GORM.
func (Face) TableName() string {
	return "faces"
}
