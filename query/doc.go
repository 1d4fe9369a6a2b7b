// Package query answers time-indexed questions about the frames of
// Formant and Pitch objects.
//
// Frames are assumed to be in ascending time order, as the parser
// produces them.
package query
