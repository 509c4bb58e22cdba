package domain

// ListingQuery parameterizes one retrieval request against the catalog
// store. Sort is passed through opaquely; the store performs the
// SQL-level ordering for server-paginated views.
type ListingQuery struct {
	Tag    string
	Type   ListingType // empty = both deal types
	Limit  int
	Offset int
	Sort   string
}

// TagListingResult is the outcome of the tag-listing pipeline.
type TagListingResult struct {
	Tag      string
	Slug     string
	Listings []*Listing
	Page     PageInfo
}

// TopScoredResult partitions the ranked set of a department by deal
// type. The score itself arrives from the data store and is trusted.
type TopScoredResult struct {
	Department string
	Sale       []*Listing
	Rent       []*Listing
	All        []*Listing
}
