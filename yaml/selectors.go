// Package yaml loads versioned selector sets from YAML files so that page
// layout changes can be handled without a code change.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/rentscout"
	"gopkg.in/yaml.v3"
)

// file is the on-disk document shape.
//
//	layouts:
//	  - name: craigslist
//	    markers: ["#titletextonly"]
//	    selectors:
//	      title: "#titletextonly"
//	      body: "#postingbody"
//	    strip: [".print-qrcode-container"]
type file struct {
	Layouts []layout `yaml:"layouts"`
}

type layout struct {
	Name      string    `yaml:"name"`
	Markers   []string  `yaml:"markers"`
	Selectors selectors `yaml:"selectors"`
	Strip     []string  `yaml:"strip"`
}

type selectors struct {
	Title       string `yaml:"title"`
	Body        string `yaml:"body"`
	MapAddress  string `yaml:"mapAddress"`
	PostingInfo string `yaml:"postingInfo"`
	Attributes  string `yaml:"attributes"`
	Price       string `yaml:"price"`
}

// LoadSelectorSetsFile reads selector sets from the file at path.
func LoadSelectorSetsFile(path string) ([]*rentscout.SelectorSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rentscout.Errorf(rentscout.EINVALID, "opening selector file: %v", err)
	}
	defer f.Close()

	return LoadSelectorSets(f)
}

// LoadSelectorSets decodes selector sets in file order, which is also the
// layout detection order. Every selector must be valid CSS, set names must
// be unique, and each set needs a body or attributes selector.
func LoadSelectorSets(r io.Reader) ([]*rentscout.SelectorSet, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, rentscout.Errorf(rentscout.EINVALID, "selector file is empty")
		}
		return nil, rentscout.Errorf(rentscout.EINVALID, "decoding selector file: %v", err)
	}
	if len(doc.Layouts) == 0 {
		return nil, rentscout.Errorf(rentscout.EINVALID, "selector file defines no layouts")
	}

	seen := make(map[rentscout.Layout]bool, len(doc.Layouts))
	sets := make([]*rentscout.SelectorSet, 0, len(doc.Layouts))
	for _, l := range doc.Layouts {
		set := l.toSelectorSet()
		if err := set.Validate(); err != nil {
			return nil, err
		}
		if seen[set.Name] {
			return nil, rentscout.Errorf(rentscout.EINVALID, "duplicate layout %q", set.Name)
		}
		seen[set.Name] = true

		if err := checkSelectors(set); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func (l layout) toSelectorSet() *rentscout.SelectorSet {
	return &rentscout.SelectorSet{
		Name:        rentscout.Layout(l.Name),
		Markers:     l.Markers,
		Title:       l.Selectors.Title,
		Body:        l.Selectors.Body,
		MapAddress:  l.Selectors.MapAddress,
		PostingInfo: l.Selectors.PostingInfo,
		Attributes:  l.Selectors.Attributes,
		Price:       l.Selectors.Price,
		Strip:       l.Strip,
	}
}

// checkSelectors compiles every non-empty selector so typos fail at load
// time instead of silently matching nothing.
func checkSelectors(set *rentscout.SelectorSet) error {
	all := []string{set.Title, set.Body, set.MapAddress, set.PostingInfo, set.Attributes, set.Price}
	all = append(all, set.Markers...)
	all = append(all, set.Strip...)
	for _, sel := range all {
		if sel == "" {
			continue
		}
		if _, err := cascadia.ParseGroup(sel); err != nil {
			return rentscout.Errorf(rentscout.EINVALID, "layout %q: invalid selector %q: %v", set.Name, sel, err)
		}
	}
	return nil
}
