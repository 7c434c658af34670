// Package config loads, normalizes, and validates rankboard configuration data.
//
// It supplies defaults for the stock ranking screen layout, expands user paths
// (including tilde shortcuts), and reads TOML files. Lookup order is an
// explicit path, then ~/.config/rankboard/config.toml, then ./rankboard.toml;
// when none exists the defaults are used unchanged.
//
// Validation errors name the offending TOML key so a broken layout is easy to
// locate.
package config
