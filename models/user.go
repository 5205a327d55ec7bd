package models

// User represents an asset owner using GORM. It corresponds to the 'users'
// table. Authentication is handled by a separate service; only the identity
// needed for ownership scoping lives here.
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email     string `gorm:"not null;unique" json:"email"`
	Name      string `gorm:"not null;default:''" json:"name"`
	CreatedAt int64  `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64  `gorm:"not null" json:"updated_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (User) TableName() string {
	return "users"
}
