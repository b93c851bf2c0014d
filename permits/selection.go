// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package permits

// Selection is the country currently opened on the map. It only ever holds
// a key of its dataset.
type Selection struct {
	ds   *Dataset
	code string
}

// NewSelection starts with nothing selected.
func NewSelection(ds *Dataset) *Selection {
	return &Selection{ds: ds}
}

// ClickShape selects code if it is permit-bearing. Clicking any other
// country changes nothing and reports false.
func (s *Selection) ClickShape(code string) bool {
	if !s.ds.Has(code) {
		return false
	}
	s.code = code
	return true
}

// ClickMarker behaves exactly like clicking the marker's country.
func (s *Selection) ClickMarker(code string) bool {
	return s.ClickShape(code)
}

// Close clears the selection.
func (s *Selection) Close() {
	s.code = ""
}

// Selected returns the selected code, if any.
func (s *Selection) Selected() (string, bool) {
	return s.code, s.code != ""
}
