package mock

import (
	"context"

	"github.com/fwojciec/rentscout"
)

var _ rentscout.ListingService = (*ListingService)(nil)

// ListingService is a mock implementation of rentscout.ListingService.
type ListingService struct {
	CreateListingFn   func(ctx context.Context, listing *rentscout.Listing) error
	FindListingByIDFn func(ctx context.Context, id string) (*rentscout.Listing, error)
	FindListingsFn    func(ctx context.Context) ([]*rentscout.Listing, error)
	UpdateListingFn   func(ctx context.Context, id string, upd rentscout.ListingUpdate) (*rentscout.Listing, error)
	DeleteListingFn   func(ctx context.Context, id string) error
}

func (s *ListingService) CreateListing(ctx context.Context, listing *rentscout.Listing) error {
	return s.CreateListingFn(ctx, listing)
}

func (s *ListingService) FindListingByID(ctx context.Context, id string) (*rentscout.Listing, error) {
	return s.FindListingByIDFn(ctx, id)
}

func (s *ListingService) FindListings(ctx context.Context) ([]*rentscout.Listing, error) {
	return s.FindListingsFn(ctx)
}

func (s *ListingService) UpdateListing(ctx context.Context, id string, upd rentscout.ListingUpdate) (*rentscout.Listing, error) {
	return s.UpdateListingFn(ctx, id, upd)
}

func (s *ListingService) DeleteListing(ctx context.Context, id string) error {
	return s.DeleteListingFn(ctx, id)
}
