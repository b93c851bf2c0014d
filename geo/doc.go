// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package geo loads country outlines for the permits map.

# Sources

HTTPSource reads a GeoJSON FeatureCollection (Natural Earth 110m countries
by default) and keys every feature by its ISO alpha-3 code:

	src := geo.NewHTTPSource(geo.DefaultURL, geo.Options{SnapshotDir: dir})
	shapes, err := src.Shapes(ctx)

Parsed shapes stay in an expiring LRU cache, concurrent fetches are
collapsed into one request, and the last good document is written to disk
as zstd-compressed msgpack. If the remote document is unreachable the
snapshot is served instead.

# Projection

Projection is a Mercator projection into SVG viewport coordinates:

	x, y := geo.DefaultProjection().Point(-74.3, 4.6)
	d := geo.DefaultProjection().Path(shape.Polygons)
*/
package geo
