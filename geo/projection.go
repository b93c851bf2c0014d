// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geo

import (
	"math"
	"strconv"
	"strings"
)

const maxLatitude = 85.0511

// Projection is a Mercator projection onto a Width x Height viewport with
// Center in the middle.
type Projection struct {
	Width, Height float64
	Scale         float64
	Center        Point
}

// DefaultProjection frames the Americas the way the permits map shows them.
func DefaultProjection() Projection {
	return Projection{Width: 800, Height: 600, Scale: 240, Center: Point{-70, 0}}
}

func mercatorY(lat float64) float64 {
	lat = math.Max(-maxLatitude, math.Min(maxLatitude, lat))
	phi := lat * math.Pi / 180
	return math.Log(math.Tan(math.Pi/4 + phi/2))
}

// Point projects a longitude, latitude pair into viewport coordinates.
func (p Projection) Point(lon, lat float64) (x, y float64) {
	x = p.Width/2 + p.Scale*(lon-p.Center[0])*math.Pi/180
	y = p.Height/2 - p.Scale*(mercatorY(lat)-mercatorY(p.Center[1]))
	return x, y
}

// Path returns SVG path data for the polygons of a shape.
func (p Projection) Path(polys []Polygon) string {
	var sb strings.Builder
	for _, poly := range polys {
		for _, ring := range poly {
			for i, pt := range ring {
				x, y := p.Point(pt[0], pt[1])
				if i == 0 {
					sb.WriteByte('M')
				} else {
					sb.WriteByte('L')
				}
				sb.WriteString(strconv.FormatFloat(x, 'f', 1, 64))
				sb.WriteByte(',')
				sb.WriteString(strconv.FormatFloat(y, 'f', 1, 64))
			}
			if len(ring) > 0 {
				sb.WriteByte('Z')
			}
		}
	}
	return sb.String()
}
