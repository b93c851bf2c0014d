// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package permits holds the permit reference data and the views built on it.

# Dataset

The dataset maps ISO alpha-3 codes to permit records and is loaded once:

	ds := permits.Default()
	rec, ok := ds.Lookup("COL")

Lookup returns a copy, so the reference data cannot be changed through it.
Overflight and Landing are pointers: nil means the dataset says nothing
about that permit, which renders differently from an explicit false.

# Detail Panel

BuildPanel turns a record into the blocks shown beside the map:

	panel, ok := permits.BuildPanel(ds, permits.DefaultNames(), "COL")

Blocks appear only for data that is present. Country names fall back to
the raw code when no name is registered.

# Map

BuildMap styles geography shapes and places markers:

	mv := permits.BuildMap(ds, names, shapes, geo.DefaultProjection())

A shape is active iff its code is a dataset key. Selection tracks the one
country opened on the map and refuses codes outside the dataset.
*/
package permits
