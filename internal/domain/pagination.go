package domain

// Page size bounds.
const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

// Pagination requests one page of a result set. Page is 1-based.
type Pagination struct {
	Page  int
	Size  int
	Total int64
}

// Normalize applies defaults and bounds.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.Size
}

// MaxPage returns the last page number for Total.
func (p Pagination) MaxPage() int {
	p = p.Normalize()
	if p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// PagingList is one page of results with the total count.
type PagingList[T any] struct {
	Items []T
	Page  Pagination
}
