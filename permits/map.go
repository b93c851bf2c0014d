// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package permits

import (
	"github.com/royalflight/flightsupport/geo"
)

// Palette is the fill of a country shape in its three interaction states.
type Palette struct {
	Default string `json:"default"`
	Hover   string `json:"hover"`
	Pressed string `json:"pressed"`
}

var (
	ActivePalette   = Palette{Default: "#D4AF37", Hover: "#F4CF57", Pressed: "#B48F17"}
	InactivePalette = Palette{Default: "#333", Hover: "#444", Pressed: "#222"}
)

// ShapeView is a country shape styled for the map.
type ShapeView struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Active bool    `json:"active"`
	Fill   Palette `json:"fill"`
	Path   string  `json:"path"`
}

// Marker is the point drawn at a permit-bearing country's coordinates.
type Marker struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// MapView is everything needed to draw the permits map.
type MapView struct {
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Shapes  []ShapeView `json:"shapes"`
	Markers []Marker    `json:"markers"`
}

// BuildMap styles each shape as active iff its code is in the dataset and
// places one marker per dataset key, in dataset order.
func BuildMap(ds *Dataset, names Names, shapes []geo.Shape, proj geo.Projection) MapView {
	mv := MapView{
		Width:   proj.Width,
		Height:  proj.Height,
		Shapes:  make([]ShapeView, 0, len(shapes)),
		Markers: make([]Marker, 0, ds.Len()),
	}

	for _, s := range shapes {
		sv := ShapeView{Code: s.Code, Name: s.Name, Fill: InactivePalette, Path: proj.Path(s.Polygons)}
		if ds.Has(s.Code) {
			sv.Active = true
			sv.Fill = ActivePalette
		}
		mv.Shapes = append(mv.Shapes, sv)
	}

	for _, code := range ds.Codes() {
		rec, ok := ds.Lookup(code)
		if !ok {
			continue
		}
		lon, lat := rec.Coordinates[0], rec.Coordinates[1]
		x, y := proj.Point(lon, lat)
		mv.Markers = append(mv.Markers, Marker{
			Code: code,
			Name: names.Display(code),
			Lon:  lon,
			Lat:  lat,
			X:    x,
			Y:    y,
		})
	}
	return mv
}
