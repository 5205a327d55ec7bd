package models

// SmartInfo holds derived metadata produced by asynchronous analysis jobs
// (embeddings, object tags), one row per asset. It corresponds to the
// 'smart_info' table. A row may exist with NULL columns when a job has run
// but produced nothing yet.
type SmartInfo struct {
	AssetID       string  `gorm:"primaryKey;type:varchar(36)" json:"asset_id"`
	ClipEmbedding []byte  `gorm:"" json:"-"`                   // Nullable, serialized vector
	Tags          *string `gorm:"" json:"tags,omitempty"`      // Nullable, JSON array of labels
	Objects       *string `gorm:"" json:"objects,omitempty"`   // Nullable, JSON array of labels
}

// TableName explicitly sets the table name for GORM.
func (SmartInfo) TableName() string {
	return "smart_info"
}
