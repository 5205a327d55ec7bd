package repository

import (
	"testing"

	"github.com/camden-git/photocatalog/models"
)

func TestPersonRepository_ListByOwner(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))
	owner := "owner-1"

	visible := &models.Person{OwnerID: owner, Name: "Alice"}
	hidden := &models.Person{OwnerID: owner, Name: "Bob", IsHidden: true}
	for _, p := range []*models.Person{visible, hidden} {
		if err := repo.Create(p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	people, err := repo.ListByOwner(owner, false)
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if len(people) != 1 || people[0].ID != visible.ID {
		t.Errorf("ListByOwner() = %d people, want only Alice", len(people))
	}

	people, err = repo.ListByOwner(owner, true)
	if err != nil {
		t.Fatalf("ListByOwner(withHidden) error = %v", err)
	}
	if len(people) != 2 {
		t.Errorf("ListByOwner(withHidden) = %d people, want 2", len(people))
	}
}

func TestPersonRepository_UpsertFaces(t *testing.T) {
	db := newTestDB(t)
	people := NewPersonRepository(db)
	assets := NewAssetRepository(db)
	owner := "owner-1"

	asset := seedAsset(t, assets, owner, nil)
	person := &models.Person{OwnerID: owner, Name: "Alice"}
	if err := people.Create(person); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	faces := []models.Face{{AssetID: asset.ID, X1: 0, Y1: 0, X2: 10, Y2: 10}}
	if err := people.UpsertFaces(faces); err != nil {
		t.Fatalf("UpsertFaces() error = %v", err)
	}

	// re-running the detection updates in place instead of duplicating
	faces[0].PersonID = &person.ID
	if err := people.UpsertFaces(faces); err != nil {
		t.Fatalf("UpsertFaces(again) error = %v", err)
	}

	stored, err := people.ListFacesByAsset(asset.ID)
	if err != nil {
		t.Fatalf("ListFacesByAsset() error = %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d faces, want 1", len(stored))
	}
	if stored[0].Person == nil || stored[0].Person.Name != "Alice" {
		t.Errorf("face person = %+v, want Alice preloaded", stored[0].Person)
	}
}
