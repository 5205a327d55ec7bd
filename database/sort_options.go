package database

// Sort orders accepted when listing an album's assets.
const (
	SortDateDesc    = "date_desc"
	SortDateAsc     = "date_asc"
	SortFilenameAsc = "filename_asc"
	SortFilenameNat = "filename_nat"
)

const DefaultSortOrder = SortDateDesc

// IsValidSortOrder checks if a string is a valid sort order constant
func IsValidSortOrder(order string) bool {
	switch order {
	case SortDateDesc, SortDateAsc, SortFilenameAsc, SortFilenameNat:
		return true
	default:
		return false
	}
}
