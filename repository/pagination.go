package repository

import "github.com/camden-git/photocatalog/models"

// Page sizes for list operations. Sizes above MaxPageSize are clamped rather
// than rejected so misconfigured jobs degrade instead of failing.
const (
	DefaultPageSize = 250
	MaxPageSize     = 1000
)

// Pagination is an offset-based page request, 1-based. Offset pagination is
// deliberate for the scanner workloads: backlogs are drained oldest-first by
// idempotent jobs, and since results are ordered by ascending creation time,
// concurrent inserts only append past the current page window. The ordinary
// drift of rows restored or deleted mid-scan is absorbed by the jobs being
// re-runnable.
type Pagination struct {
	Page int
	Size int
}

func (p Pagination) limitOffset() (limit, offset int) {
	size := p.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return size, size * (page - 1)
}

// AssetPage is one page of results. HasNextPage is derived by fetching one
// row beyond the requested size, so no separate count query is needed.
type AssetPage struct {
	Assets      []models.Asset `json:"assets"`
	HasNextPage bool           `json:"has_next_page"`
}
