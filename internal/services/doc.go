// Package services provides error classification sentinels and context
// annotation helpers shared by the CLI and supporting components.
//
// The alignment engine itself degrades expected data irregularities into
// report fields instead of returning errors; the sentinels here classify
// request-level failures (missing subtitle file, bad configuration) so the
// CLI can present them consistently.
package services
