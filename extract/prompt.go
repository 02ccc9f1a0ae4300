// Package extract turns listing fragments into structured records, either
// through a text-generation service or by pattern matching.
package extract

import (
	"fmt"
	"strings"

	"github.com/fwojciec/rentscout"
)

// SystemPrompt is the fixed system instruction for semantic extraction.
const SystemPrompt = "You are an expert at extracting structured information from rental listings. " +
	"Extract the requested fields and respond with a single JSON object only, with no other text."

// Field is one target field of semantic extraction.
type Field struct {
	Name        string
	Description string
}

// DefaultFields returns the fields of rentscout.ExtractionResult in prompt order.
func DefaultFields() []Field {
	return []Field{
		{Name: "address", Description: "The physical address of the listing or location information"},
		{Name: "listingCreator", Description: "The name of the person who created the listing"},
		{Name: "contactInfo", Description: "Any contact information like phone or email (if present)"},
		{Name: "price", Description: "The price of the listing (if available)"},
		{Name: "bedrooms", Description: `The number of bedrooms, digits only (like "2" or "3")`},
		{Name: "bathrooms", Description: `The number of bathrooms, digits with at most one decimal place (like "1", "2" or "1.5")`},
		{Name: "allowsPets", Description: "Boolean (true or false) indicating if pets are allowed, based on any mention of pets in the listing"},
	}
}

// BuildUserPrompt builds the user instruction. Every fragment is included
// verbatim, followed by the field list and the formatting rules.
func BuildUserPrompt(f *rentscout.FragmentMap, fields []Field) string {
	var sb strings.Builder
	sb.WriteString("I have a rental listing with the following content. Please extract all the requested information.\n\n")
	fmt.Fprintf(&sb, "Title: %s\n\n", f.Title)
	fmt.Fprintf(&sb, "Body: %s\n\n", f.Body)
	fmt.Fprintf(&sb, "Address from map (if available): %s\n\n", f.MapAddress)
	fmt.Fprintf(&sb, "Posting info: %s\n\n", f.PostingInfo)
	fmt.Fprintf(&sb, "Attributes: %s\n\n", f.Attributes)
	if f.Price != "" {
		fmt.Fprintf(&sb, "Price: %s\n\n", f.Price)
	}

	sb.WriteString("Please extract the following information in JSON format:\n")
	for _, field := range fields {
		fmt.Fprintf(&sb, "- %s: %s\n", field.Name, field.Description)
	}
	sb.WriteString("\nFor any fields where information is not available, use an empty string for text fields or false for boolean fields.\n")
	sb.WriteString("Format your entire response as a valid JSON object with these fields only.")
	return sb.String()
}
