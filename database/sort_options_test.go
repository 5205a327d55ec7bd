package database

import "testing"

func TestIsValidSortOrder(t *testing.T) {
	for _, valid := range []string{SortDateDesc, SortDateAsc, SortFilenameAsc, SortFilenameNat} {
		if !IsValidSortOrder(valid) {
			t.Errorf("IsValidSortOrder(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "sideways", "DATE_DESC"} {
		if IsValidSortOrder(invalid) {
			t.Errorf("IsValidSortOrder(%q) = true, want false", invalid)
		}
	}
}
