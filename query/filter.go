package query

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/camden-git/photocatalog/models"
)

const exifJoin = "LEFT JOIN exif ON exif.asset_id = assets.id"

// AssetFilter is a sparse search request over the asset catalog. Every field
// is optional; a nil pointer (or empty slice) places no constraint at all and
// is dropped from the compiled predicate, never rendered as IS NULL.
type AssetFilter struct {
	ID            *string
	OwnerID       *string
	LibraryID     *string
	DeviceAssetID *string
	DeviceID      *string
	Type          *string
	Checksum      []byte

	IsVisible  *bool
	IsFavorite *bool
	IsArchived *bool
	IsExternal *bool
	IsOffline  *bool
	IsReadOnly *bool

	// IsMotion and IsEncoded are "has X" filters: they compile to a NULL
	// check on the backing reference, not to a boolean column.
	IsMotion  *bool
	IsEncoded *bool

	CreatedAfter  *int64
	CreatedBefore *int64
	UpdatedAfter  *int64
	UpdatedBefore *int64
	TakenAfter    *int64
	TakenBefore   *int64

	// Trashed bounds compare against deleted_at and only make sense together
	// with WithDeleted; Build rejects them otherwise.
	TrashedAfter  *time.Time
	TrashedBefore *time.Time

	OriginalPath     *string
	OriginalFileName *string
	ResizePath       *string
	WebpPath         *string
	EncodedVideoPath *string

	// Exif sub-fields. Setting any of them forces the exif join even when
	// WithExif is false.
	City      *string
	State     *string
	Country   *string
	Make      *string
	Model     *string
	LensModel *string

	WithDeleted bool
	WithExif    bool
	WithPeople  bool
	WithStacked bool

	Order string // "ASC" or "DESC" on file_created_at; empty means DESC
}

// Build validates the filter and compiles it into an immutable predicate.
func (f AssetFilter) Build() (Predicate, error) {
	if f.Type != nil && !models.IsValidAssetType(*f.Type) {
		return Predicate{}, fmt.Errorf("%w: %q", ErrInvalidAssetType, *f.Type)
	}
	if err := validateOrder(f.Order); err != nil {
		return Predicate{}, err
	}
	if (f.TrashedAfter != nil || f.TrashedBefore != nil) && !f.WithDeleted {
		return Predicate{}, ErrTrashedRangeRequiresWithDeleted
	}

	p := Predicate{
		WithDeleted: f.WithDeleted,
		WithExif:    f.WithExif,
		WithPeople:  f.WithPeople,
		WithStacked: f.WithStacked,
		Order:       f.Order,
	}

	addEq(&p, "assets.id", f.ID)
	addEq(&p, "assets.owner_id", f.OwnerID)
	addEq(&p, "assets.library_id", f.LibraryID)
	addEq(&p, "assets.device_asset_id", f.DeviceAssetID)
	addEq(&p, "assets.device_id", f.DeviceID)
	addEq(&p, "assets.type", f.Type)
	if len(f.Checksum) > 0 {
		p.Conds = append(p.Conds, sq.Eq{"assets.checksum": f.Checksum})
	}

	addEqBool(&p, "assets.is_visible", f.IsVisible)
	addEqBool(&p, "assets.is_favorite", f.IsFavorite)
	addEqBool(&p, "assets.is_archived", f.IsArchived)
	addEqBool(&p, "assets.is_external", f.IsExternal)
	addEqBool(&p, "assets.is_offline", f.IsOffline)
	addEqBool(&p, "assets.is_read_only", f.IsReadOnly)

	if f.IsMotion != nil {
		if *f.IsMotion {
			p.Conds = append(p.Conds, sq.NotEq{"assets.live_photo_video_id": nil})
		} else {
			p.Conds = append(p.Conds, sq.Eq{"assets.live_photo_video_id": nil})
		}
	}
	if f.IsEncoded != nil {
		if *f.IsEncoded {
			p.Conds = append(p.Conds, notEmpty("assets.encoded_video_path"))
		} else {
			p.Conds = append(p.Conds, emptyOrNull("assets.encoded_video_path"))
		}
	}

	addRange(&p, "assets.created_at", f.CreatedAfter, f.CreatedBefore)
	addRange(&p, "assets.updated_at", f.UpdatedAfter, f.UpdatedBefore)
	addRange(&p, "assets.file_created_at", f.TakenAfter, f.TakenBefore)
	if f.TrashedAfter != nil {
		p.Conds = append(p.Conds, sq.GtOrEq{"assets.deleted_at": *f.TrashedAfter})
	}
	if f.TrashedBefore != nil {
		p.Conds = append(p.Conds, sq.LtOrEq{"assets.deleted_at": *f.TrashedBefore})
	}

	addEq(&p, "assets.original_path", f.OriginalPath)
	addEq(&p, "assets.original_file_name", f.OriginalFileName)
	addEq(&p, "assets.resize_path", f.ResizePath)
	addEq(&p, "assets.webp_path", f.WebpPath)
	addEq(&p, "assets.encoded_video_path", f.EncodedVideoPath)

	exifConds := len(p.Conds)
	addEq(&p, "exif.city", f.City)
	addEq(&p, "exif.state", f.State)
	addEq(&p, "exif.country", f.Country)
	addEq(&p, "exif.make", f.Make)
	addEq(&p, "exif.model", f.Model)
	addEq(&p, "exif.lens_model", f.LensModel)
	if len(p.Conds) > exifConds || f.WithExif {
		p.Joins = append(p.Joins, exifJoin)
	}

	return p, nil
}

func validateOrder(order string) error {
	switch order {
	case "", "ASC", "DESC":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrder, order)
	}
}

func addEq(p *Predicate, column string, v *string) {
	if v != nil {
		p.Conds = append(p.Conds, sq.Eq{column: *v})
	}
}

func addEqBool(p *Predicate, column string, v *bool) {
	if v != nil {
		p.Conds = append(p.Conds, sq.Eq{column: *v})
	}
}

// addRange compiles a closed interval; a single bound becomes a one-sided
// comparison and two nil bounds add nothing.
func addRange(p *Predicate, column string, after, before *int64) {
	if after != nil {
		p.Conds = append(p.Conds, sq.GtOrEq{column: *after})
	}
	if before != nil {
		p.Conds = append(p.Conds, sq.LtOrEq{column: *before})
	}
}
