package rentscout

import "context"

// ListingWriter persists listings outside the database.
type ListingWriter interface {
	// WriteListing writes one listing, replacing any earlier copy.
	WriteListing(ctx context.Context, listing *Listing) error
}
