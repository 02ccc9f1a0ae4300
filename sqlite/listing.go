package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/rentscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rentscout.ListingService = (*ListingService)(nil)

const listingColumns = `id, url, address, listing_creator, contact_info, price,
	bedrooms, bathrooms, allows_pets, has_applied, notes, date_added, date_updated`

// ListingService implements rentscout.ListingService using SQLite.
type ListingService struct {
	db *DB
}

// NewListingService creates a new ListingService.
func NewListingService(db *DB) *ListingService {
	return &ListingService{db: db}
}

// CreateListing stores a new listing with a generated ID.
func (s *ListingService) CreateListing(ctx context.Context, listing *rentscout.Listing) error {
	if err := listing.Validate(); err != nil {
		return err
	}

	listing.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	listing.DateAdded = now
	listing.DateUpdated = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO listings (`+listingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, listing.ID, listing.URL, listing.Address, listing.ListingCreator, listing.ContactInfo,
		listing.Price, listing.Bedrooms, listing.Bathrooms, listing.AllowsPets, listing.HasApplied,
		listing.Notes, formatTime(listing.DateAdded), formatTime(listing.DateUpdated))

	return err
}

// FindListingByID retrieves a listing by ID.
func (s *ListingService) FindListingByID(ctx context.Context, id string) (*rentscout.Listing, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = ?`, id)

	listing, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rentscout.Errorf(rentscout.ENOTFOUND, "listing not found")
	}
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// FindListings retrieves all listings, most recently added first.
func (s *ListingService) FindListings(ctx context.Context) ([]*rentscout.Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+listingColumns+` FROM listings
		ORDER BY date_added DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []*rentscout.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

// UpdateListing applies upd to an existing listing.
func (s *ListingService) UpdateListing(ctx context.Context, id string, upd rentscout.ListingUpdate) (*rentscout.Listing, error) {
	listing, err := s.FindListingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(listing)
	if err := listing.Validate(); err != nil {
		return nil, err
	}
	listing.DateUpdated = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE listings
		SET address = ?, listing_creator = ?, contact_info = ?, price = ?, bedrooms = ?,
			bathrooms = ?, allows_pets = ?, has_applied = ?, notes = ?, date_updated = ?
		WHERE id = ?
	`, listing.Address, listing.ListingCreator, listing.ContactInfo, listing.Price, listing.Bedrooms,
		listing.Bathrooms, listing.AllowsPets, listing.HasApplied, listing.Notes,
		formatTime(listing.DateUpdated), id)
	if err != nil {
		return nil, err
	}

	return listing, nil
}

// DeleteListing permanently removes a listing.
func (s *ListingService) DeleteListing(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM listings WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rentscout.Errorf(rentscout.ENOTFOUND, "listing not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(row scanner) (*rentscout.Listing, error) {
	var l rentscout.Listing
	var dateAdded, dateUpdated string

	if err := row.Scan(&l.ID, &l.URL, &l.Address, &l.ListingCreator, &l.ContactInfo, &l.Price,
		&l.Bedrooms, &l.Bathrooms, &l.AllowsPets, &l.HasApplied, &l.Notes,
		&dateAdded, &dateUpdated); err != nil {
		return nil, err
	}

	var err error
	if l.DateAdded, err = parseRFC3339(dateAdded, "date_added"); err != nil {
		return nil, err
	}
	if l.DateUpdated, err = parseRFC3339(dateUpdated, "date_updated"); err != nil {
		return nil, err
	}
	return &l, nil
}
