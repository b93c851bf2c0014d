// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultURL serves Natural Earth 110m admin-0 countries as GeoJSON.
const DefaultURL = "https://raw.githubusercontent.com/nvkelso/natural-earth-vector/master/geojson/ne_110m_admin_0_countries.geojson"

// Point is a longitude, latitude pair.
type Point [2]float64

// Ring is a closed sequence of points; a Polygon is an outer ring followed
// by its holes.
type (
	Ring    []Point
	Polygon []Ring
)

// Shape is one country outline keyed by its ISO alpha-3 code.
type Shape struct {
	Code     string    `msgpack:"code"`
	Name     string    `msgpack:"name"`
	Polygons []Polygon `msgpack:"polygons"`
}

// Source supplies country shapes.
type Source interface {
	Shapes(ctx context.Context) ([]Shape, error)
}

var ErrNoFeatures = errors.New("geojson: no features")

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Properties map[string]any `json:"properties"`
	Geometry   *geometry      `json:"geometry"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Parse decodes a GeoJSON FeatureCollection. codeProp names the property
// holding the ISO alpha-3 code; Natural Earth marks some countries with
// "-99" there, in which case ADM0_A3 is used instead. Features without a
// usable code or with a geometry other than Polygon or MultiPolygon are
// skipped.
func Parse(r io.Reader, codeProp string) ([]Shape, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to decode geojson: %w", err)
	}
	if len(fc.Features) == 0 {
		return nil, ErrNoFeatures
	}

	shapes := make([]Shape, 0, len(fc.Features))
	for _, f := range fc.Features {
		code := featureCode(f.Properties, codeProp)
		if code == "" || f.Geometry == nil {
			continue
		}

		var polys []Polygon
		switch f.Geometry.Type {
		case "Polygon":
			var p Polygon
			if err := json.Unmarshal(f.Geometry.Coordinates, &p); err != nil {
				return nil, fmt.Errorf("feature %s: %w", code, err)
			}
			polys = []Polygon{p}
		case "MultiPolygon":
			if err := json.Unmarshal(f.Geometry.Coordinates, &polys); err != nil {
				return nil, fmt.Errorf("feature %s: %w", code, err)
			}
		default:
			continue
		}

		shapes = append(shapes, Shape{
			Code:     code,
			Name:     stringProp(f.Properties, "NAME"),
			Polygons: polys,
		})
	}
	return shapes, nil
}

func featureCode(props map[string]any, codeProp string) string {
	code := strings.ToUpper(stringProp(props, codeProp))
	if code == "" || code == "-99" {
		code = strings.ToUpper(stringProp(props, "ADM0_A3"))
	}
	if code == "-99" {
		return ""
	}
	return code
}

func stringProp(props map[string]any, key string) string {
	if props == nil {
		return ""
	}
	s, _ := props[key].(string)
	return s
}
