// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package gallery implements the image viewer: a 1-indexed position that
// wraps at both ends, a grid or lightbox mode, and keyboard handling.
package gallery
