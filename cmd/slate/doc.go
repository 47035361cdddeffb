// Command slate aligns per-chapter recording transcripts with the subtitle
// track of the final edited video and prints a paste-ready chapter list.
package main
