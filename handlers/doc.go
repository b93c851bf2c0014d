// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the Royal Flight Support site.

# Handler Types

Each handler is a struct holding the shared Deps and the config:

  - PageHandler: Server-rendered pages (home, gallery, charter, permits, language)
  - ContactHandler: Mail-send endpoint and the contact form post
  - APIHandler: Permit dataset, map, charter categories, health
  - InboxHandler: Archived submissions for operators

Handlers are created via constructor functions:

	pageHandler := handlers.NewPageHandler(deps, cfg)

# Pages

Page state lives in the query string, so every view is a plain link:

	/gallery?image=4&view=lightbox&key=ArrowRight
	/charter?category=3
	/permits?country=COL

Pages render through web.Renderer with the visitor's locale from the
request context.

# Mail-send Endpoint

POST /api/send-email accepts {name, email, message}:

	200 {"status":"success"}                          - sent
	200 {"status":"success","message":"Email simulated"} - no SMTP host configured
	400 {"status":"error","message":"Invalid JSON"}
	400 {"status":"error","errors":{...}}             - field validation
	500 {"status":"error","message":"Failed to send email"}

Any other method gets 405 with an Allow: POST header. Every attempt that
reaches the mailer is archived in the inbox when one is configured.

# Inbox

GET /api/inbox requires the X-Admin-Key header, derived from
ADMIN_KEY_SALT (print it with -print-admin-key).

# Map Degradation

When country shapes cannot be loaded the permits map still draws its
markers and the page shows a notice; the JSON map reports degraded=true.
*/
package handlers
