package domain

// PageInfo describes one offset/limit window over the full matching set.
// Continuation is caller-driven: advance offset by limit and re-query.
// The model is stable only while the underlying order does not change
// within a browsing session.
type PageInfo struct {
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

// NewPageInfo computes the window status from the query echo. HasMore is
// false whenever the set is empty (returned == 0 and total == 0).
func NewPageInfo(offset, limit, returnedCount, total int) PageInfo {
	return PageInfo{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+returnedCount < total,
	}
}

// PaginatedListings is a raw page plus the echoed total, as handed from
// the listing store to the pipeline.
type PaginatedListings struct {
	Listings   []*Listing
	TotalCount int
}
