// Package pagination slices an ordered result set into fixed-size pages.
//
// Pages are 1-based. A page outside 1..TotalPages yields an empty slice; it is
// never an error and never clamped to the last page.
package pagination

// DefaultPageSize matches the catalog list view.
const DefaultPageSize = 12

// MaxPageSize bounds a single page.
const MaxPageSize = 100

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// Window returns items[(page-1)*pageSize : page*pageSize], truncated to the
// slice bounds. The result shares the backing array of items.
func Window[T any](items []T, page, pageSize int) []T {
	if page <= 0 || pageSize <= 0 {
		return []T{}
	}
	if page > TotalPages(len(items), pageSize) {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns the number of pages needed for total items; zero items
// yield zero pages.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
