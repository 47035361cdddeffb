// Package logging wires log/slog with the repository's console and JSON
// handlers, typed attribute helpers, and standardized field names.
package logging
