// Package history stores completed alignment runs in a local SQLite
// database so earlier results can be listed and reviewed.
package history
