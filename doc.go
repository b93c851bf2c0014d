// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Royal Flight Support site server.

Royal Flight Support is a brochure site for a private-aviation support
company: a permit map for Latin America, a photo gallery, a charter
category browser and a contact form backed by a mail-send endpoint, all
in English and Spanish.

# Starting the Server

With no configuration at all the server runs on port 3000, simulates mail
delivery and keeps no inbox:

	go run .

With flags:

	go run . -p 8080 -d "file:inbox.db" -t sqlite -images ./public/images

# Configuration

Settings come from flags, then environment variables (a .env file is
loaded first), then an optional YAML file (-config), then defaults.

Mail:

  - EMAIL_HOST, EMAIL_PORT, EMAIL_SECURE: SMTP server (unset host simulates)
  - EMAIL_USER, EMAIL_PASS: SMTP credentials, EMAIL_USER is also the sender
  - CONTACT_EMAIL: Recipient (default: Ops@royal-flightsupport.com)
  - MAIL_ENDPOINT: Post form submissions to this URL instead of mailing in process

Inbox:

  - DATABASE_URL (-d): Archive database; empty disables the inbox
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_KEY_SALT (-admin-salt): Secret for the inbox admin key HMAC
  - IP_HASH_SALT: Secret for hashing visitor IPs

Print the inbox admin key with:

	go run . -print-admin-key

Other:

  - PORT (-p): Server port (default: 3000)
  - IMAGES_DIR (-images): Gallery image directory
  - GEO_URL, GEO_CACHE_TTL, GEO_CACHE_DIR: Country shape source
  - LOG_LEVEL, LOG_FORMAT, LOG_FILE: Logging

# Architecture

  - handlers: Page, contact, API and inbox handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, gzip, locale, JSON helpers
  - models: API request/response types
  - permits, geo: Permit dataset, country shapes and map styling
  - gallery, charter, contact: Gallery viewer, charter browser, contact form
  - mailer: SMTP delivery and simulation
  - i18n: English and Spanish string tables
  - inbox: Submission archive (SQLite or PostgreSQL)
  - auth: Admin key and IP hashing
  - web: Embedded templates and assets
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
