// Package fs exports listings as Markdown notes with YAML frontmatter.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/rentscout"
	"gopkg.in/yaml.v3"
)

// ListingPath returns the file name for a listing relative to the export
// directory.
func ListingPath(l *rentscout.Listing) (string, error) {
	id := strings.TrimSpace(l.ID)
	if id == "" {
		return "", rentscout.Errorf(rentscout.EINVALID, "listing ID required")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", rentscout.Errorf(rentscout.EINVALID, "invalid listing ID %q", l.ID)
	}
	return id + ".md", nil
}

// frontmatter is the YAML header of an exported listing.
type frontmatter struct {
	ID             string `yaml:"id"`
	URL            string `yaml:"url"`
	Address        string `yaml:"address,omitempty"`
	Price          string `yaml:"price,omitempty"`
	Bedrooms       string `yaml:"bedrooms,omitempty"`
	Bathrooms      string `yaml:"bathrooms,omitempty"`
	ListingCreator string `yaml:"listing_creator,omitempty"`
	ContactInfo    string `yaml:"contact_info,omitempty"`
	AllowsPets     bool   `yaml:"allows_pets"`
	HasApplied     bool   `yaml:"has_applied"`
	Added          string `yaml:"added"`
	Updated        string `yaml:"updated"`
}

// FormatListing renders a listing as YAML frontmatter followed by its notes.
func FormatListing(l *rentscout.Listing) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		ID:             l.ID,
		URL:            l.URL,
		Address:        l.Address,
		Price:          l.Price,
		Bedrooms:       l.Bedrooms,
		Bathrooms:      l.Bathrooms,
		ListingCreator: l.ListingCreator,
		ContactInfo:    l.ContactInfo,
		AllowsPets:     l.AllowsPets,
		HasApplied:     l.HasApplied,
		Added:          l.DateAdded.Format("2006-01-02"),
		Updated:        l.DateUpdated.Format("2006-01-02"),
	})
	if err != nil {
		return "", rentscout.Errorf(rentscout.EINTERNAL, "encoding frontmatter: %v", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n")
	if l.Notes != "" {
		b.WriteString("\n")
		b.WriteString(l.Notes)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Ensure Writer implements rentscout.ListingWriter at compile time.
var _ rentscout.ListingWriter = (*Writer)(nil)

// Writer writes listings as Markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteListing writes the listing to <id>.md. The file is replaced
// atomically so readers never see a partial note.
func (w *Writer) WriteListing(ctx context.Context, l *rentscout.Listing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}

	relPath, err := ListingPath(l)
	if err != nil {
		return err
	}
	content, err := FormatListing(l)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.baseDir, ".listing-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(w.baseDir, relPath))
}
