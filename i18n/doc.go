// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package i18n holds the site's English and Spanish string tables.
//
// Tables are YAML files embedded from locales/. Lookups fall back to the
// English table and finally to the key, so a missing translation shows up
// as its key on the page rather than as an empty string.
package i18n
