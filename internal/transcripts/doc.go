// Package transcripts loads the per-chapter raw transcripts captured during
// recording.
//
// Recording tooling writes one text file per take named
// {chapter:2digits}-{take}-{name}.txt plus combined *-chapter.txt artifacts.
// The loader keeps the first non-empty take per (chapter, name) pair, derives
// a display name from the kebab-case slug, and returns sources in a stable
// order so alignment output is deterministic.
package transcripts
