package kernel

import "parceltracker/internal/pkg/errs"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is a zero-based page index and a page size.
type PageRequest struct {
	page int
	size int
}

// NewPageRequest validates page >= 0 and 1 <= size <= MaxPageSize.
func NewPageRequest(page, size int) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded")
	}
	if size < 1 || size > MaxPageSize {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}
	return PageRequest{page: page, size: size}, nil
}

// FirstPage is page 0 at the default size.
func FirstPage() PageRequest {
	return PageRequest{page: 0, size: DefaultPageSize}
}

func (p PageRequest) Page() int { return p.page }

func (p PageRequest) Size() int { return p.size }

func (p PageRequest) Offset() int {
	return p.page * p.size
}

// TotalPages returns the number of pages needed to hold total items.
func (p PageRequest) TotalPages(total int64) int {
	if p.size == 0 || total <= 0 {
		return 0
	}
	size := int64(p.size)
	return int((total + size - 1) / size)
}

// Window returns the [from, to) bounds of this page within a slice of length n.
func (p PageRequest) Window(n int) (int, int) {
	from := min(p.Offset(), n)
	to := min(from+p.size, n)
	return from, to
}
