package rentscout

import (
	"context"
	"time"
)

// Listing is a tracked rental listing adopted from an extraction result.
type Listing struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	Address        string    `json:"address"`
	ListingCreator string    `json:"listingCreator"`
	ContactInfo    string    `json:"contactInfo"`
	Price          string    `json:"price"`
	Bedrooms       string    `json:"bedrooms"`
	Bathrooms      string    `json:"bathrooms"`
	AllowsPets     bool      `json:"allowsPets"`
	HasApplied     bool      `json:"hasApplied"`
	Notes          string    `json:"notes"`
	DateAdded      time.Time `json:"dateAdded"`
	DateUpdated    time.Time `json:"dateUpdated"`
}

// NewListing adopts an extraction result for the given listing URL.
// Identifier and timestamps are assigned by the ListingService.
func NewListing(url string, r *ExtractionResult) *Listing {
	l := &Listing{URL: url}
	if r == nil {
		return l
	}
	l.Address = r.Address
	l.ListingCreator = r.ListingCreator
	l.ContactInfo = r.ContactInfo
	l.Price = r.Price
	l.Bedrooms = r.Bedrooms
	l.Bathrooms = r.Bathrooms
	l.AllowsPets = r.AllowsPets
	return l
}

// Validate returns an error if the listing contains invalid fields.
func (l *Listing) Validate() error {
	if l.URL == "" {
		return Errorf(EINVALID, "listing URL required")
	}
	return nil
}

// ListingService represents a service for managing listings.
type ListingService interface {
	// CreateListing assigns an ID and timestamps and stores the listing.
	CreateListing(ctx context.Context, listing *Listing) error

	// FindListingByID retrieves a listing by ID.
	// Returns ENOTFOUND if listing does not exist.
	FindListingByID(ctx context.Context, id string) (*Listing, error)

	// FindListings retrieves all listings, most recently added first.
	FindListings(ctx context.Context) ([]*Listing, error)

	// UpdateListing updates an existing listing and refreshes DateUpdated.
	// Returns ENOTFOUND if listing does not exist.
	UpdateListing(ctx context.Context, id string, upd ListingUpdate) (*Listing, error)

	// DeleteListing permanently removes a listing.
	// Returns ENOTFOUND if listing does not exist.
	DeleteListing(ctx context.Context, id string) error
}

// ListingUpdate represents fields that can be updated on a listing.
type ListingUpdate struct {
	Address        *string `json:"address"`
	ListingCreator *string `json:"listingCreator"`
	ContactInfo    *string `json:"contactInfo"`
	Price          *string `json:"price"`
	Bedrooms       *string `json:"bedrooms"`
	Bathrooms      *string `json:"bathrooms"`
	AllowsPets     *bool   `json:"allowsPets"`
	HasApplied     *bool   `json:"hasApplied"`
	Notes          *string `json:"notes"`
}

// Apply copies the set fields of upd onto l.
func (upd ListingUpdate) Apply(l *Listing) {
	if upd.Address != nil {
		l.Address = *upd.Address
	}
	if upd.ListingCreator != nil {
		l.ListingCreator = *upd.ListingCreator
	}
	if upd.ContactInfo != nil {
		l.ContactInfo = *upd.ContactInfo
	}
	if upd.Price != nil {
		l.Price = *upd.Price
	}
	if upd.Bedrooms != nil {
		l.Bedrooms = *upd.Bedrooms
	}
	if upd.Bathrooms != nil {
		l.Bathrooms = *upd.Bathrooms
	}
	if upd.AllowsPets != nil {
		l.AllowsPets = *upd.AllowsPets
	}
	if upd.HasApplied != nil {
		l.HasApplied = *upd.HasApplied
	}
	if upd.Notes != nil {
		l.Notes = *upd.Notes
	}
}
