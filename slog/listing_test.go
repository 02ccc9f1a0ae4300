package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/rentscout"
	"github.com/fwojciec/rentscout/mock"
	rsslog "github.com/fwojciec/rentscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingListingService(t *testing.T) {
	t.Parallel()

	newService := func(buf *bytes.Buffer) *rsslog.LoggingListingService {
		logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.ListingService{
			CreateListingFn: func(ctx context.Context, l *rentscout.Listing) error {
				l.ID = "abc"
				return nil
			},
			FindListingByIDFn: func(ctx context.Context, id string) (*rentscout.Listing, error) {
				return nil, rentscout.Errorf(rentscout.ENOTFOUND, "listing not found")
			},
			FindListingsFn: func(ctx context.Context) ([]*rentscout.Listing, error) {
				return []*rentscout.Listing{{ID: "a"}, {ID: "b"}}, nil
			},
			UpdateListingFn: func(ctx context.Context, id string, upd rentscout.ListingUpdate) (*rentscout.Listing, error) {
				return &rentscout.Listing{ID: id}, nil
			},
			DeleteListingFn: func(ctx context.Context, id string) error {
				return nil
			},
		}
		return rsslog.NewLoggingListingService(inner, logger)
	}

	t.Run("logs assigned ID on create", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := newService(&buf).CreateListing(context.Background(), &rentscout.Listing{URL: "u"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "create listing")
		assert.Contains(t, buf.String(), "id=abc")
	})

	t.Run("logs count on find", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		got, err := newService(&buf).FindListings(context.Background())

		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs lookup errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := newService(&buf).FindListingByID(context.Background(), "missing")

		assert.Equal(t, rentscout.ENOTFOUND, rentscout.ErrorCode(err))
		assert.Contains(t, buf.String(), "id=missing")
	})

	t.Run("logs update and delete", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := newService(&buf)

		_, err := svc.UpdateListing(context.Background(), "x", rentscout.ListingUpdate{})
		require.NoError(t, err)
		require.NoError(t, svc.DeleteListing(context.Background(), "x"))

		assert.Contains(t, buf.String(), "update listing")
		assert.Contains(t, buf.String(), "delete listing")
	})
}
