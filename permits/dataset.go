// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package permits

import (
	"github.com/brunoga/deep"
)

// Station is an airport offering ground handling under a permit.
type Station struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Record holds the permit attributes of one country.
//
// Overflight and Landing are nil when the dataset has no information for
// that category, which is not the same as an explicit false.
type Record struct {
	Overflight  *bool      `json:"overflight,omitempty"`
	Landing     *bool      `json:"landing,omitempty"`
	Handling    []Station  `json:"handling,omitempty"`
	Other       []string   `json:"other,omitempty"`
	Coordinates [2]float64 `json:"coordinates"` // longitude, latitude
}

// RegionalPermit is a permit that covers a region rather than one country.
type RegionalPermit struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Entry pairs a country code with its record, used to build a Dataset.
type Entry struct {
	Code   string
	Record Record
}

// Dataset is the immutable reference table of permit-bearing countries.
// Keys keep the order in which they were authored.
type Dataset struct {
	order   []string
	records map[string]Record
}

// NewDataset builds a dataset from entries. A repeated code keeps its first
// position and its last record.
func NewDataset(entries ...Entry) *Dataset {
	ds := &Dataset{records: make(map[string]Record, len(entries))}
	for _, e := range entries {
		if _, ok := ds.records[e.Code]; !ok {
			ds.order = append(ds.order, e.Code)
		}
		ds.records[e.Code] = deep.MustCopy(e.Record)
	}
	return ds
}

// Lookup returns a copy of the record for code.
func (ds *Dataset) Lookup(code string) (Record, bool) {
	if ds == nil {
		return Record{}, false
	}
	rec, ok := ds.records[code]
	if !ok {
		return Record{}, false
	}
	return deep.MustCopy(rec), true
}

// Has reports whether code is a key of the dataset.
func (ds *Dataset) Has(code string) bool {
	if ds == nil {
		return false
	}
	_, ok := ds.records[code]
	return ok
}

// Codes returns the dataset keys in authored order.
func (ds *Dataset) Codes() []string {
	if ds == nil {
		return nil
	}
	out := make([]string, len(ds.order))
	copy(out, ds.order)
	return out
}

// Len is the number of permit-bearing countries.
func (ds *Dataset) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.order)
}

// Names maps country codes to display names.
type Names map[string]string

// Display returns the registered name for code, or code itself when no name
// is registered.
func (n Names) Display(code string) string {
	if name, ok := n[code]; ok && name != "" {
		return name
	}
	return code
}

func yes() *bool {
	b := true
	return &b
}

// Default returns the dataset published on the site.
func Default() *Dataset {
	return NewDataset(
		Entry{"PAN", Record{Overflight: yes(), Landing: yes(), Coordinates: [2]float64{-80.7821, 8.5380}}},
		Entry{"CUB", Record{Overflight: yes(), Coordinates: [2]float64{-79.5, 21.5}}},
		Entry{"ECU", Record{Overflight: yes(), Landing: yes(), Coordinates: [2]float64{-78.1834, -1.8312}}},
		Entry{"PER", Record{
			Overflight:  yes(),
			Landing:     yes(),
			Handling:    []Station{{"SPJC", "Lima"}},
			Coordinates: [2]float64{-75.0152, -9.1900},
		}},
		Entry{"BRA", Record{Overflight: yes(), Landing: yes(), Coordinates: [2]float64{-51.9253, -14.2350}}},
		Entry{"COL", Record{
			Overflight: yes(),
			Other:      []string{"Permiso de permanencia"},
			Handling: []Station{
				{"SKBO", "Bogotá El Dorado"},
				{"SKCG", "Cartagena"},
				{"SKRG", "Rionegro"},
				{"SKCL", "Cali"},
				{"SKBQ", "Barranquilla"},
			},
			Coordinates: [2]float64{-74.2973, 4.5709},
		}},
		Entry{"NIC", Record{Overflight: yes(), Coordinates: [2]float64{-85.2072, 12.8654}}},
		Entry{"CHL", Record{Overflight: yes(), Landing: yes(), Coordinates: [2]float64{-71.5430, -35.6751}}},
		Entry{"GTM", Record{
			Overflight:  yes(),
			Landing:     yes(),
			Handling:    []Station{{"MGGT", "Guatemala"}, {"MGMM", "Mundo Maya"}},
			Coordinates: [2]float64{-90.2308, 15.7835},
		}},
		Entry{"BOL", Record{Overflight: yes(), Landing: yes(), Coordinates: [2]float64{-63.5887, -16.2902}}},
		Entry{"SLV", Record{
			Landing:     yes(),
			Handling:    []Station{{"MSLP", "San Salvador"}, {"MSSS", "Ilopango"}},
			Coordinates: [2]float64{-88.8965, 13.7942},
		}},
		Entry{"USA", Record{Other: []string{"Eapis USA"}, Coordinates: [2]float64{-95.7129, 37.0902}}},
		Entry{"MEX", Record{
			Other:       []string{"Eapis Mexico", "Permiso internacion"},
			Handling:    []Station{{"MMTP", "Tapachula"}, {"MMCZ", "Cozumel"}},
			Coordinates: [2]float64{-102.5528, 23.6345},
		}},
		Entry{"CUW", Record{Overflight: yes(), Coordinates: [2]float64{-68.9900, 12.1696}}},
	)
}

// DefaultNames returns the country names shown in the detail panel.
func DefaultNames() Names {
	return Names{
		"PAN": "Panamá",
		"CUB": "Cuba",
		"ECU": "Ecuador",
		"PER": "Perú",
		"BRA": "Brasil",
		"COL": "Colombia",
		"NIC": "Nicaragua",
		"CHL": "Chile",
		"GTM": "Guatemala",
		"BOL": "Bolivia",
		"SLV": "El Salvador",
		"USA": "Estados Unidos",
		"MEX": "México",
		"CUW": "Curazao",
	}
}

// Regional returns the regional permits listed beside the map.
func Regional() []RegionalPermit {
	return []RegionalPermit{
		{Name: "CENAMER", Type: "Overflight", Description: "Central America Airspace"},
	}
}
