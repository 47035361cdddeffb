// Package media resolves the authoritative subtitle file for a finished
// video from a priority-ordered set of candidate locations.
package media
