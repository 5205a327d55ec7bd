package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/camden-git/photocatalog/models"
)

// PersonRepository handles database operations for Person and Face entities
type PersonRepository struct {
	DB *gorm.DB
}

// NewPersonRepository creates a new instance of PersonRepository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

// Create creates a new person record
func (r *PersonRepository) Create(person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	if person.CreatedAt == 0 {
		person.CreatedAt = now
	}
	if person.UpdatedAt == 0 {
		person.UpdatedAt = now
	}
	if err := r.DB.Create(person).Error; err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}

// GetByID retrieves a person by their ID
func (r *PersonRepository) GetByID(id string) (*models.Person, error) {
	var person models.Person
	err := r.DB.First(&person, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get person by ID %s: %w", id, err)
	}
	return &person, nil
}

// ListByOwner retrieves an owner's people, optionally including hidden ones
func (r *PersonRepository) ListByOwner(ownerID string, withHidden bool) ([]models.Person, error) {
	tx := r.DB.Where("owner_id = ?", ownerID)
	if !withHidden {
		tx = tx.Where("is_hidden = ?", false)
	}
	var people []models.Person
	if err := tx.Order("name ASC").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to list people for owner %s: %w", ownerID, err)
	}
	return people, nil
}

// UpsertFaces writes a batch of face detections in one transaction, so a
// partially stored detection result never becomes visible
func (r *PersonRepository) UpsertFaces(faces []models.Face) error {
	if len(faces) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range faces {
			if faces[i].ID == "" {
				faces[i].ID = uuid.NewString()
			}
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&faces).Error
		if err != nil {
			return fmt.Errorf("failed to upsert %d faces: %w", len(faces), err)
		}
		return nil
	})
}

// ListFacesByAsset retrieves the faces detected in one asset
func (r *PersonRepository) ListFacesByAsset(assetID string) ([]models.Face, error) {
	var faces []models.Face
	err := r.DB.Preload("Person").Where("asset_id = ?", assetID).Find(&faces).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list faces for asset %s: %w", assetID, err)
	}
	return faces, nil
}
