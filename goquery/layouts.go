package goquery

import "github.com/fwojciec/rentscout"

// printOnly matches the QR-code block the site injects into listing bodies
// for printing.
var printOnly = []string{".print-information", ".print-qrcode-container"}

// CraigslistSelectorSet targets the current listing layout, where the title
// text has its own id and the map address sits in .mapaddress.
func CraigslistSelectorSet() *rentscout.SelectorSet {
	return &rentscout.SelectorSet{
		Name:        rentscout.LayoutCraigslist,
		Markers:     []string{"#titletextonly"},
		Title:       "#titletextonly",
		Body:        "#postingbody",
		MapAddress:  ".mapaddress",
		PostingInfo: ".postinginfos",
		Attributes:  ".attrgroup",
		Price:       ".postingtitletext .price",
		Strip:       printOnly,
	}
}

// CraigslistLegacySelectorSet targets the older layout addressed by class
// names only, with the map address in .showaddress.
func CraigslistLegacySelectorSet() *rentscout.SelectorSet {
	return &rentscout.SelectorSet{
		Name:        rentscout.LayoutCraigslistLegacy,
		Markers:     []string{".showaddress"},
		Title:       ".postingtitle",
		Body:        "#postingbody",
		MapAddress:  ".showaddress",
		PostingInfo: ".postinginfos",
		Attributes:  ".attrgroup",
		Price:       ".price",
		Strip:       printOnly,
	}
}

// GenericSelectorSet is the fallback for pages matching no known layout.
// Each selector lists the known alternatives.
func GenericSelectorSet() *rentscout.SelectorSet {
	return &rentscout.SelectorSet{
		Name:        rentscout.LayoutGeneric,
		Title:       "#titletextonly, .postingtitle, h1",
		Body:        "#postingbody, [itemprop=description]",
		MapAddress:  ".mapaddress, .showaddress, [itemprop=streetAddress]",
		PostingInfo: ".postinginfos",
		Attributes:  ".attrgroup",
		Price:       ".price",
		Strip:       printOnly,
	}
}

// DefaultSelectorSets returns the built-in layouts in detection order.
func DefaultSelectorSets() []*rentscout.SelectorSet {
	return []*rentscout.SelectorSet{
		CraigslistSelectorSet(),
		CraigslistLegacySelectorSet(),
	}
}
