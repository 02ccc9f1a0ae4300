package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rentscout"
)

// Ensure LoggingListingService implements rentscout.ListingService.
var _ rentscout.ListingService = (*LoggingListingService)(nil)

// LoggingListingService wraps a ListingService with logging.
type LoggingListingService struct {
	next   rentscout.ListingService
	logger *slog.Logger
}

// NewLoggingListingService creates a new LoggingListingService.
func NewLoggingListingService(next rentscout.ListingService, logger *slog.Logger) *LoggingListingService {
	return &LoggingListingService{next: next, logger: logger}
}

func (s *LoggingListingService) CreateListing(ctx context.Context, listing *rentscout.Listing) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create listing",
			"id", listing.ID,
			"url", listing.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateListing(ctx, listing)
}

func (s *LoggingListingService) FindListingByID(ctx context.Context, id string) (listing *rentscout.Listing, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find listing",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindListingByID(ctx, id)
}

func (s *LoggingListingService) FindListings(ctx context.Context) (listings []*rentscout.Listing, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find listings",
			"count", len(listings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindListings(ctx)
}

func (s *LoggingListingService) UpdateListing(ctx context.Context, id string, upd rentscout.ListingUpdate) (listing *rentscout.Listing, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update listing",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateListing(ctx, id, upd)
}

func (s *LoggingListingService) DeleteListing(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete listing",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteListing(ctx, id)
}
