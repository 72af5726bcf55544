package pagination

// Page-number pagination for the archived-orders view. Pages are zero-indexed
// to match the HTTP contract.

const (
	// DefaultPageSize is applied when the caller does not provide a size.
	DefaultPageSize = 20
	// MaxPageSize caps how many rows any page query can request.
	MaxPageSize = 100
)

// Params holds offset pagination inputs from controllers.
type Params struct {
	Page int
	Size int
}

// Normalize clamps the parameters to sane bounds.
func (p Params) Normalize() Params {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized parameters.
func (p Params) Offset() int {
	n := p.Normalize()
	return n.Page * n.Size
}

// TotalPages computes the page count for a result set of the given size.
func TotalPages(totalElements int64, size int) int {
	if size <= 0 {
		return 0
	}
	pages := totalElements / int64(size)
	if totalElements%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
