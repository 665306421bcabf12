// Package config loads, normalizes, and validates petrenko configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PETRENKO_LOG_LEVEL. The Config type centralizes the scoring knobs, the
// language pair, output preferences, and logging settings so the CLI can
// resolve everything in one pass.
//
// Always obtain settings through this package so downstream code receives
// canonical formats and clear validation errors.
package config
