// Package subtitle parses the finished video's SRT subtitle track into timed
// text segments for chapter alignment.
//
// Parsing is deliberately lenient: malformed cue blocks are dropped silently
// rather than failing the whole file, because transcription tools routinely
// emit minor irregularities. Only a file that yields zero segments is treated
// as unusable, and that decision belongs to the caller.
package subtitle
