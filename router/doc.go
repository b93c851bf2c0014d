// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Royal Flight Support site.

# Route Registration

NewRouter returns the complete handler, already wrapped in the request ID,
gzip and locale middleware:

	handler := router.NewRouter(deps, cfg)

# Endpoints

Health:

	GET /health - plain "OK"

Pages (HTML, localized by ?lang=, the lang cookie or Accept-Language):

	GET  /              - Landing page; any other unknown path is a 404 page
	GET  /gallery       - Gallery viewer (?image=N&view=grid|lightbox&key=...)
	GET  /charter       - Charter categories (?category=N for the detail view)
	GET  /charter/quote - Redirects to the contact section
	GET  /permits       - Permit map and list (?country=XXX opens the panel)
	POST /contact       - Contact form post
	GET  /lang/{code}   - Sets the language cookie and redirects to ?next=

Assets:

	GET /static/... - Embedded CSS and JavaScript
	GET /images/... - Gallery images from the images directory

JSON API (CORS enabled):

	POST /api/send-email          - Mail-send endpoint; other verbs get 405
	GET  /api/permits             - Permit dataset, in authored order
	GET  /api/permits/regional    - Regional permits
	GET  /api/permits/{code}      - Detail panel for one country
	GET  /api/map                 - Styled shapes and markers
	GET  /api/charter/categories  - Charter categories for the locale
	GET  /api/inbox               - Archived submissions (requires X-Admin-Key)
	GET  /api/health              - Inbox and mail mode
*/
package router
