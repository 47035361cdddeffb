// Package config loads, normalizes, and validates slate configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/slate/config.toml or a
// project-local slate.toml. Always obtain settings through this package so
// downstream code receives sanitized paths and clear validation errors.
package config
