package entity

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

// PageRequest selects one page of an owner-scoped list.
type PageRequest struct {
	Page  int64
	Limit int64
}

// NewPageRequest applies defaults to zero values and clamps the limit.
// Negative values are left for the caller to reject.
func NewPageRequest(page, limit int64) PageRequest {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return PageRequest{Page: page, Limit: limit}
}

// Valid reports whether both page and limit are positive.
func (r PageRequest) Valid() bool {
	return r.Page >= 1 && r.Limit >= 1
}

// Skip returns how many documents precede the requested page.
func (r PageRequest) Skip() int64 {
	return (r.Page - 1) * r.Limit
}

// Pagination is the metadata returned alongside a page of documents.
type Pagination struct {
	TotalDocs   int64 `json:"totalDocs"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int64 `json:"currentPage"`
	Limit       int64 `json:"limit"`
}

// NewPagination computes the metadata for total documents split by req.
func NewPagination(total int64, req PageRequest) Pagination {
	var pages int64
	if req.Limit > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}

	return Pagination{
		TotalDocs:   total,
		TotalPages:  pages,
		CurrentPage: req.Page,
		Limit:       req.Limit,
	}
}

// Page is one page of documents of type T.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
