// Package rentscout tracks rental listings scraped from a classifieds site.
// It fetches a listing page, locates a fixed set of text fragments with
// structural selectors, extracts structured fields through a text-generation
// service and falls back to pattern matching when that service fails.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, anthropic/).
package rentscout
