package model

// Pagination describes one page of a listing. Pages are 1-based.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevPage    int
	NextPage    int
}

// Paginate clamps page into [1, totalPages] and computes the pagination
// state for a listing of totalRows rows split into perPage-sized pages.
// TotalPages has a floor of 1 even when totalRows is 0.
func Paginate(page, totalRows, perPage int) Pagination {
	totalPages := (totalRows + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
	}
}

// Offset is the index of the first row of the current page.
func (p Pagination) Offset(perPage int) int {
	return (p.CurrentPage - 1) * perPage
}
