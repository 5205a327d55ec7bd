package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/camden-git/photocatalog/models"
)

// AssetProperty names a derived attribute that background jobs produce.
// The scanner pages through assets still lacking one of them.
type AssetProperty string

const (
	PropertyThumbnail    AssetProperty = "thumbnail"
	PropertyEncodedVideo AssetProperty = "encoded-video"
	PropertyExif         AssetProperty = "exif"
	PropertyEmbedding    AssetProperty = "embedding"
	PropertyObjectTags   AssetProperty = "object-tags"
	PropertyFaces        AssetProperty = "faces"
	PropertySidecar      AssetProperty = "sidecar"

	// PropertyOfflineMarker selects assets flagged offline within one
	// library; the library scope is mandatory.
	PropertyOfflineMarker AssetProperty = "offline-marker"

	// PropertySidecarPresent is the positive counterpart of PropertySidecar,
	// used by the sidecar sync job.
	PropertySidecarPresent AssetProperty = "sidecar-present"
)

// ScanOptions carries the extra parameters some property kinds require.
type ScanOptions struct {
	LibraryID *string
}

// scanSpec holds the predicate shape for one property kind. Each "no attached
// record" check is a LEFT JOIN whose key stays NULL when the record is absent.
type scanSpec struct {
	joins        []string
	needsLibrary bool
	conds        func(opts ScanOptions) []sq.Sqlizer
}

var visible = sq.Eq{"assets.is_visible": true}

// scanSpecs is the dispatch table for the scanner, one entry per recognized
// property kind. Adding a kind means adding exactly one entry here.
var scanSpecs = map[AssetProperty]scanSpec{
	PropertyThumbnail: {
		conds: func(ScanOptions) []sq.Sqlizer {
			return []sq.Sqlizer{
				visible,
				sq.Or{
					emptyOrNull("assets.resize_path"),
					emptyOrNull("assets.webp_path"),
					sq.Eq{"assets.thumbhash": nil},
				},
			}
		},
	},
	PropertyEncodedVideo: {
		conds: func(ScanOptions) []sq.Sqlizer {
			return []sq.Sqlizer{
				sq.Eq{"assets.type": models.AssetTypeVideo},
				emptyOrNull("assets.encoded_video_path"),
			}
		},
	},
	PropertyExif: {
		joins: []string{"LEFT JOIN exif ON exif.asset_id = assets.id"},
		conds: func(ScanOptions) []sq.Sqlizer {
			return []sq.Sqlizer{visible, sq.Eq{"exif.asset_id": nil}}
		},
	},
	PropertyEmbedding: {
		joins: []string{"JOIN smart_info ON smart_info.asset_id = assets.id"},
		conds: func(ScanOptions) []sq.Sqlizer {
			return []sq.Sqlizer{
				visible,
				notEmpty("assets.resize_path"),
				sq.Eq{"smart_info.clip_embedding": nil},
			}
		},
	},
	PropertyObjectTags: {
		joins: []string{"JOIN smart_info ON smart_info.asset_id = assets.id"},
		conds: func(ScanOptions) []sq.Sqlizer {
			return []sq.Sqlizer{
				visible,
				notEmpty("assets.resize_path"),
				sq.Eq{"smart_info.tags": nil},
			}
		},
	},
	PropertyFaces: {
		joins: []string{
			"LEFT JOIN faces ON faces.asset_id = assets.id",
			"LEFT JOIN asset_job_status ON asset_job_status.asset_id = assets.id",
		},
		conds: func(ScanOptions) []sq.Sqlizer {
			return []sq.Sqlizer{
				visible,
				notEmpty("assets.resize_path"),
				sq.Eq{"faces.asset_id": nil},
				// a set faces_recognized_at with no face rows means the asset
				// was processed and simply contains no faces; skip it
				sq.Eq{"asset_job_status.faces_recognized_at": nil},
			}
		},
	},
	PropertySidecar: {
		conds: func(ScanOptions) []sq.Sqlizer {
			return []sq.Sqlizer{visible, emptyOrNull("assets.sidecar_path")}
		},
	},
	PropertySidecarPresent: {
		conds: func(ScanOptions) []sq.Sqlizer {
			return []sq.Sqlizer{visible, notEmpty("assets.sidecar_path")}
		},
	},
	PropertyOfflineMarker: {
		needsLibrary: true,
		conds: func(opts ScanOptions) []sq.Sqlizer {
			return []sq.Sqlizer{
				sq.Eq{"assets.is_offline": true},
				sq.Eq{"assets.library_id": *opts.LibraryID},
			}
		},
	},
}

// BuildScan compiles the predicate for one property kind. An unrecognized
// kind is a validation error, never a silent empty result.
func BuildScan(property AssetProperty, opts ScanOptions) (Predicate, error) {
	spec, ok := scanSpecs[property]
	if !ok {
		return Predicate{}, fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
	if spec.needsLibrary && opts.LibraryID == nil {
		return Predicate{}, fmt.Errorf("%w for property %q", ErrLibraryIDRequired, property)
	}
	return Predicate{
		Conds: spec.conds(opts),
		Joins: spec.joins,
	}, nil
}
