// FilePath: internal/pagination/pagination.go
package pagination

// Page is the envelope returned by every owner-scoped listing.
type Page[T any] struct {
	Data          []T   `json:"data"`
	HasNext       bool  `json:"hasNext"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// Window is the offset/limit pair to hand to the store.
type Window struct {
	Offset int
	Limit  int
}

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// Normalize clamps page and pageSize to valid values. Page is 0-based.
func Normalize(page, pageSize int) (int, int) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// TotalPages computes ceil(totalElements / pageSize).
func TotalPages(totalElements int64, pageSize int) int {
	if totalElements <= 0 {
		return 0
	}
	return int((totalElements + int64(pageSize) - 1) / int64(pageSize))
}

// InRange reports whether the requested page holds any data. Out-of-range
// pages are not an error; they degrade to an empty page.
func InRange(page int, totalElements int64, pageSize int) bool {
	return page < TotalPages(totalElements, pageSize)
}

// WindowFor returns the store window for a page.
func WindowFor(page, pageSize int) Window {
	return Window{Offset: page * pageSize, Limit: pageSize}
}

// NewPage assembles the envelope for one fetched page. data must already be
// the page slice fetched via WindowFor.
func NewPage[T any](data []T, totalElements int64, page, pageSize int) Page[T] {
	totalPages := TotalPages(totalElements, pageSize)
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:          data,
		HasNext:       page < totalPages-1,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}

// EmptyPage is the degraded envelope for a page at or past the end.
func EmptyPage[T any](totalElements int64, pageSize int) Page[T] {
	return Page[T]{
		Data:          []T{},
		HasNext:       false,
		TotalElements: totalElements,
		TotalPages:    TotalPages(totalElements, pageSize),
	}
}
