package query

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Time bucket granularities for gallery grouping.
const (
	TimeBucketSizeDay   = "DAY"
	TimeBucketSizeMonth = "MONTH"
)

const (
	albumJoin = "JOIN album_assets ON album_assets.asset_id = assets.id"
	facesJoin = "JOIN faces ON faces.asset_id = assets.id"
)

// DateTruncExpr returns the SQL expression that truncates
// assets.local_date_time to the start of its calendar bucket, as Unix
// seconds. local_date_time already encodes the capture-location wall clock as
// UTC, so plain UTC truncation groups assets by the date the user saw on
// their device.
func DateTruncExpr(size string) (string, error) {
	switch size {
	case TimeBucketSizeDay:
		return "CAST(strftime('%s', assets.local_date_time, 'unixepoch', 'start of day') AS INTEGER)", nil
	case TimeBucketSizeMonth:
		return "CAST(strftime('%s', assets.local_date_time, 'unixepoch', 'start of month') AS INTEGER)", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBucketSize, size)
	}
}

// TruncateLocal is the Go mirror of DateTruncExpr, used to derive expected
// bucket keys without a round trip to the store.
func TruncateLocal(size string, local int64) (int64, error) {
	t := time.Unix(local, 0).UTC()
	switch size {
	case TimeBucketSizeDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix(), nil
	case TimeBucketSizeMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Unix(), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBucketSize, size)
	}
}

// TimeBucketOptions selects and filters the assets that participate in
// time-bucketed gallery queries.
type TimeBucketOptions struct {
	Size string // TimeBucketSizeDay or TimeBucketSizeMonth

	UserIDs  []string
	AlbumID  *string
	PersonID *string

	IsArchived *bool
	IsFavorite *bool

	// IsTrashed, when set, bypasses the default soft-delete scope in both
	// directions: true selects only trashed assets, false only live ones.
	IsTrashed *bool

	// WithStacked collapses stacks to their parent asset.
	WithStacked bool
}

// Build validates the options and compiles the shared predicate applied by
// both the bucket-count and bucket-content queries. Two conditions are
// unconditional: hidden assets never appear, and neither do assets whose
// capture time is still in the future (clock skew on ingesting devices).
func (o TimeBucketOptions) Build() (Predicate, error) {
	if _, err := DateTruncExpr(o.Size); err != nil {
		return Predicate{}, err
	}

	p := Predicate{
		Conds: []sq.Sqlizer{
			sq.Eq{"assets.is_visible": true},
			sq.Lt{"assets.file_created_at": time.Now().Unix()},
		},
	}

	if o.AlbumID != nil {
		p.Joins = append(p.Joins, albumJoin)
		p.Conds = append(p.Conds, sq.Eq{"album_assets.album_id": *o.AlbumID})
	}
	if len(o.UserIDs) > 0 {
		p.Conds = append(p.Conds, sq.Eq{"assets.owner_id": o.UserIDs})
	}
	addEqBool(&p, "assets.is_archived", o.IsArchived)
	addEqBool(&p, "assets.is_favorite", o.IsFavorite)

	if o.IsTrashed != nil {
		p.WithDeleted = true
		if *o.IsTrashed {
			p.Conds = append(p.Conds, sq.NotEq{"assets.deleted_at": nil})
		} else {
			p.Conds = append(p.Conds, sq.Eq{"assets.deleted_at": nil})
		}
	}

	if o.PersonID != nil {
		// an asset can hold several faces of the same person, so the join can
		// multiply rows
		p.Joins = append(p.Joins, facesJoin)
		p.Conds = append(p.Conds, sq.Eq{"faces.person_id": *o.PersonID})
		p.Distinct = true
	}

	if o.WithStacked {
		p.Conds = append(p.Conds, sq.Eq{"assets.stack_parent_id": nil})
	}

	return p, nil
}
