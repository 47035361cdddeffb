// Package timecode converts between SRT subtitle timestamps and the compact
// marker strings used in pasted chapter lists.
package timecode
