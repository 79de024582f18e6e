// Package property is the read-only view of listings owned by the listing service.
package property

import (
	"context"
	"errors"
)

var ErrListingNotFound = errors.New("listing not found")

type Listing struct {
	ID      string
	OwnerID string
	Title   string
}

// Directory resolves listings to their owners.
type Directory interface {
	// GetListing returns ErrListingNotFound for unknown ids.
	GetListing(ctx context.Context, listingID string) (*Listing, error)
	GetListings(ctx context.Context, listingIDs []string) (map[string]*Listing, error)
	ListingsOfOwner(ctx context.Context, ownerID string) ([]*Listing, error)
}
