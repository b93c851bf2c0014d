// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web embeds the site's HTML templates and static assets.
//
// Each page template defines a "content" block that the shared "base"
// layout wraps. Gallery images are not embedded; they are served from the
// configured images directory.
package web
