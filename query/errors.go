package query

import "errors"

// Validation errors returned before any store access. Callers match them with
// errors.Is; the wrapped message carries the offending field or value.
var (
	ErrInvalidAssetType  = errors.New("invalid asset type")
	ErrInvalidBucketSize = errors.New("invalid time bucket size")
	ErrInvalidOrder      = errors.New("invalid sort direction")
	ErrUnknownProperty   = errors.New("unknown asset property")
	ErrLibraryIDRequired = errors.New("library id is required")

	// ErrTrashedRangeRequiresWithDeleted rejects a trashed date range on a
	// filter that does not opt into soft-deleted rows. The widening used to be
	// implied by the range's presence; it is now an explicit option.
	ErrTrashedRangeRequiresWithDeleted = errors.New("trashed range requires WithDeleted")
)
