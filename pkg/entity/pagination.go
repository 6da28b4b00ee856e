package entity

// SortOrder is the direction of an ORDER BY clause.
type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// Valid reports whether the order is one of the two accepted directions.
func (o SortOrder) Valid() bool {
	return o == SortAscending || o == SortDescending
}

// DefaultPageSize is used when a Pagination carries no page size.
const DefaultPageSize = 10

// Pagination is the page position, size, total count, and sort order of
// one list view. It is independent of any entity type. A page fetch
// recomputes TotalRecords in place, so the widget driving the view can
// derive the page count from the same value the fetch used.
type Pagination struct {
	// PageNumber is 1-based. Zero is treated as page 1.
	PageNumber int

	// PageSize is the number of records per page. Zero means
	// DefaultPageSize.
	PageSize int

	// TotalRecords is the filter-free table size, recomputed before every
	// page fetch. It is derived state, not caller-supplied.
	TotalRecords int

	// SortBy names the sort column as a property name; it is normalized
	// before use. Sorting applies only when SortOrder is also set.
	SortBy    string
	SortOrder SortOrder
}

// Page returns the effective 1-based page number.
func (p *Pagination) Page() int {
	if p.PageNumber < 1 {
		return 1
	}
	return p.PageNumber
}

// Size returns the effective page size.
func (p *Pagination) Size() int {
	if p.PageSize < 1 {
		return DefaultPageSize
	}
	return p.PageSize
}

// Offset returns the number of records to skip for the current page.
func (p *Pagination) Offset() int {
	return (p.Page() - 1) * p.Size()
}

// PageCount returns how many pages TotalRecords spans at the effective
// page size.
func (p *Pagination) PageCount() int {
	size := p.Size()
	if p.TotalRecords%size == 0 {
		return p.TotalRecords / size
	}
	return p.TotalRecords/size + 1
}

// Sorted reports whether both a sort column and a direction are present.
func (p *Pagination) Sorted() bool {
	return p.SortBy != "" && p.SortOrder != ""
}
