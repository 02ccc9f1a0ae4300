package rentscout

// FragmentMap holds the named text fragments located on a listing page.
// Every field may be empty. A FragmentMap is built once per fetch and is not
// modified afterwards.
type FragmentMap struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	MapAddress  string `json:"mapAddress"`
	PostingInfo string `json:"postingInfo"`

	// Attributes is the text of every attribute group on the page, in
	// document order, joined with newlines.
	Attributes string `json:"attributes"`

	// Price is the dedicated price element, when the page layout has one.
	Price string `json:"price"`
}

// IsEmpty reports whether the page yielded nothing worth extracting:
// both the body and the attribute groups are empty.
func (f *FragmentMap) IsEmpty() bool {
	return f.Body == "" && f.Attributes == ""
}
