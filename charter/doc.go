// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package charter lists the aircraft categories offered for charter and
models the overlay used to browse them.

The browser is a two-state machine, Grid and Detail:

	b := charter.NewBrowser()
	b.Open()
	b.Select(3) // detail of category 3
	b.Back()    // grid again
	target := b.RequestQuote() // overlay closed, target is "/#contact"
*/
package charter
