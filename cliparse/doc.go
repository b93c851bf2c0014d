// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are layered, highest first:

 1. CLI flags
 2. Environment variables, after loading a .env file with godotenv
 3. A YAML config file read by viper (-config, or flightsupport.yaml in
    /etc/flightsupport or the working directory)
 4. Defaults

# CLI Flags

	-p               Server port
	-d               Inbox database URL
	-t               Database type (sqlite or postgres)
	-images          Gallery image directory
	-log-level       Log level
	-config          YAML config file
	-env-file        dotenv file (default .env)
	-admin-salt      Admin key salt
	-print-admin-key Print the inbox admin key and exit

# Environment Variables

	PORT, BASE_URL
	DATABASE_URL, DATABASE_TYPE
	ADMIN_KEY_SALT, IP_HASH_SALT
	EMAIL_HOST, EMAIL_PORT, EMAIL_SECURE, EMAIL_USER, EMAIL_PASS, CONTACT_EMAIL
	MAIL_ENDPOINT, MAIL_SIMULATE_DELAY
	GEO_URL, GEO_CACHE_TTL, GEO_CACHE_DIR
	IMAGES_DIR
	LOG_LEVEL, LOG_FORMAT, LOG_FILE

The same keys nest in YAML, e.g. email.host or log.level.

# Optional Pieces

Nothing is required. An empty DATABASE_URL disables the inbox, an empty
ADMIN_KEY_SALT disables the inbox API, and an empty or placeholder
EMAIL_HOST makes the mail endpoint simulate sends.

# Validation

ParseFlags rejects out-of-range ports, unknown database types, negative
durations and unknown log levels or formats.
*/
package cliparse
