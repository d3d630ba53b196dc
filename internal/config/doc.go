// Package config loads, normalizes, and validates orcidscout configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SCOPUS_API_KEY and ORCIDSCOUT_ROR_ID. A .env file in the working directory is
// read before the environment is consulted. The Config type centralizes the
// API endpoints, the affiliation target, batch pacing, and table defaults so the
// CLI can discover everything in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized URLs, canonical log formats, and clear validation errors.
package config
