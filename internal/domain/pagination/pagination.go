// Package pagination implements deterministic offset-based page windowing
// over sorted candidate sets. Repositories apply Offset/Limit from Params
// after a fully deterministic sort (ties broken by id) so that
// concatenating all pages yields the candidate set exactly once.
package pagination

// Default window applied when the caller supplies nothing usable.
const (
	DefaultPage  = 1
	DefaultLimit = 10

	// MaxLimit caps the window so a client cannot request an unbounded page.
	MaxLimit = 100
)

// Params is a page request. Zero or negative values are normalized to the
// defaults instead of propagating into a query.
type Params struct {
	Page  int `json:"page"  query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// Normalize returns a copy with page and limit forced into valid ranges.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	return p
}

// Offset returns the number of rows to skip for the (normalized) params.
func (p Params) Offset() int {
	n := p.Normalize()

	return (n.Page - 1) * n.Limit
}

// Page is one window of a candidate set together with its totals.
// A page beyond the end of the set is an empty Items slice, not an error.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// NewPage assembles a Page from an already-windowed item slice and the
// total count of the candidate set before windowing.
func NewPage[T any](items []T, params Params, totalItems int64) *Page[T] {
	n := params.Normalize()
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:      items,
		Page:       n.Page,
		Limit:      n.Limit,
		TotalItems: totalItems,
		TotalPages: totalPages(totalItems, n.Limit),
	}
}

func totalPages(totalItems int64, limit int) int64 {
	if totalItems <= 0 {
		return 0
	}

	return (totalItems + int64(limit) - 1) / int64(limit)
}
