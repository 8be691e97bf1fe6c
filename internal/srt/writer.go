package srt

import (
	"strconv"
	"strings"

	"subshift/internal/timecode"
)

// Write renders records back into SRT text: number line, canonical
// zero-padded time line, body lines verbatim, then one blank line — the
// final record included. The structural inverse of Parse, modulo timestamp
// re-padding and decimal re-rendering of the number.
func Write(subs []Subtitle) []byte {
	var b strings.Builder
	for i := range subs {
		writeSubtitle(&b, &subs[i])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func writeSubtitle(b *strings.Builder, sub *Subtitle) {
	b.WriteString(strconv.FormatUint(uint64(sub.Number), 10))
	b.WriteByte('\n')
	b.WriteString(timecode.Format(sub.From))
	b.WriteString(ArrowSeparator)
	b.WriteString(timecode.Format(sub.To))
	b.WriteByte('\n')
	for _, line := range sub.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
