// Package srt parses and serializes SubRip subtitle files.
//
// A file is a sequence of blocks: a number line, a time line
// ("start --> end"), body lines, and a blank separator line. The parser
// tracks display-width offsets for every consumed line so diagnostics
// select visually correct columns; see internal/source.
package srt

import (
	"subshift/internal/source"
	"subshift/internal/timecode"
)

// ArrowSeparator splits the time line into its start and end timestamps.
const ArrowSeparator = " --> "

// Subtitle is one parsed record. From/To are mutated by the shift engine;
// the spans survive parsing so later phases can point diagnostics back at
// the record's own lines.
type Subtitle struct {
	Number uint32
	From   timecode.Millis
	To     timecode.Millis
	Lines  []string

	NumberSpan source.Span
	TimeSpan   source.Span
}
