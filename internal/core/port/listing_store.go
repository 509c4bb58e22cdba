package port

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

// ListingStorePort is the boundary to the external catalog data store.
// The store owns the canonical listing database and performs the
// SQL-level ordering for server-paginated queries; this side only
// parameterizes requests and consumes rows.
type ListingStorePort interface {
	// FetchByTag returns one page of raw candidates plus the echoed
	// total count of the full matching set (0 for an empty set).
	FetchByTag(ctx context.Context, query domain.ListingQuery) (*domain.PaginatedListings, error)

	// FetchTopScored returns the ranked "best opportunity" set for a
	// department, highest score first. The score is computed upstream
	// and trusted as-is.
	FetchTopScored(ctx context.Context, department string, listingType domain.ListingType, limit int) ([]*domain.Listing, error)

	// FetchByDepartment returns listings of one department for
	// aggregate statistics.
	FetchByDepartment(ctx context.Context, department string, limit int) ([]*domain.Listing, error)
}
