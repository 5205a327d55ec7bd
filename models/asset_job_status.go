package models

// AssetJobStatus tracks which derived-feature jobs have completed for an
// asset, one row per asset. It corresponds to the 'asset_job_status' table.
//
// The missing-property scanner consults it so that an asset confirmed to
// contain zero faces is not re-enqueued forever: a set FacesRecognizedAt with
// no face rows means "processed, nothing found".
type AssetJobStatus struct {
	AssetID             string `gorm:"primaryKey;type:varchar(36)" json:"asset_id"`
	FacesRecognizedAt   *int64 `gorm:"" json:"faces_recognized_at,omitempty"`   // Nullable, Unix timestamp
	MetadataExtractedAt *int64 `gorm:"" json:"metadata_extracted_at,omitempty"` // Nullable, Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (AssetJobStatus) TableName() string {
	return "asset_job_status"
}
