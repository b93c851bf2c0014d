// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package permits

// SectionKind identifies a block of the country detail panel.
type SectionKind string

const (
	SectionOverflight SectionKind = "overflight"
	SectionLanding    SectionKind = "landing"
	SectionHandling   SectionKind = "handling"
	SectionOther      SectionKind = "other"
)

// Section is one rendered block of the detail panel.
type Section struct {
	Kind     SectionKind `json:"kind"`
	Title    string      `json:"title"`
	Stations []Station   `json:"stations,omitempty"`
	Items    []string    `json:"items,omitempty"`
}

// Panel is the detail view of one permit-bearing country.
type Panel struct {
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Sections []Section `json:"sections"`
}

// BuildPanel applies the panel rendering rules to the record of code.
// It reports false when code is not in the dataset; callers skip the panel.
func BuildPanel(ds *Dataset, names Names, code string) (Panel, bool) {
	rec, ok := ds.Lookup(code)
	if !ok {
		return Panel{}, false
	}

	p := Panel{Code: code, Name: names.Display(code), Sections: []Section{}}
	if rec.Overflight != nil && *rec.Overflight {
		p.Sections = append(p.Sections, Section{Kind: SectionOverflight, Title: "Overflight Permit"})
	}
	if rec.Landing != nil && *rec.Landing {
		p.Sections = append(p.Sections, Section{Kind: SectionLanding, Title: "Landing Permit"})
	}
	if len(rec.Handling) > 0 {
		p.Sections = append(p.Sections, Section{Kind: SectionHandling, Title: "Handling Services", Stations: rec.Handling})
	}
	if len(rec.Other) > 0 {
		p.Sections = append(p.Sections, Section{Kind: SectionOther, Title: "Other Permits", Items: rec.Other})
	}
	return p, true
}
