// Package timecode converts between SRT textual timestamps and integer
// millisecond counts.
//
// Parse accepts the permissive grammar `[[H:]MM:]SS[,mmm]`; Format always
// emits the canonical zero-padded `HH:MM:SS,mmm`. Values are uint32 millis
// (~49.7 days); realistic subtitle durations never approach that bound, so
// overflow is a defect of the input, not a checked error.
package timecode

import (
	"fmt"
	"strconv"
	"strings"

	"subshift/internal/diag"
	"subshift/internal/source"
)

// Millis is a non-negative count of milliseconds.
type Millis uint32

const (
	Second Millis = 1000
	Minute        = 60 * Second
	Hour          = 60 * Minute
)

// Parse decodes a textual timestamp into milliseconds. Segments are split on
// ':' right to left: the rightmost is always "seconds[,millis]", then
// minutes, then hours. span must cover the whole timestamp text in the
// original input; every segment failure is reported over that full span so
// the caller's diagnostics point at the timestamp, not a bare column 0.
func Parse(text string, span source.Span) (Millis, *diag.Diagnostic) {
	// Не более трёх сегментов: у "1:2:3:4" секции секунд достаётся "3:4",
	// которая не парсится как число — лишние сегменты отвергаются.
	segs := strings.SplitN(text, ":", 3)
	last := len(segs) - 1

	secondsText, millisText, hasMillis := strings.Cut(segs[last], ",")
	if !hasMillis {
		millisText = "0"
	}

	seconds, err := parseSegment(secondsText)
	if err != nil {
		d := diag.NewError(diag.TimeInvalidSeconds, span,
			fmt.Sprintf("cannot parse %q as an integer", secondsText))
		return 0, &d
	}
	millis, err := parseSegment(millisText)
	if err != nil {
		d := diag.NewError(diag.TimeInvalidMillis, span,
			fmt.Sprintf("cannot parse %q as an integer", millisText))
		return 0, &d
	}

	var minutes, hours Millis
	if last >= 1 {
		minutes, err = parseSegment(segs[last-1])
		if err != nil {
			d := diag.NewError(diag.TimeInvalidMinutes, span,
				fmt.Sprintf("cannot parse %q as an integer", segs[last-1]))
			return 0, &d
		}
	}
	if last >= 2 {
		hours, err = parseSegment(segs[last-2])
		if err != nil {
			d := diag.NewError(diag.TimeInvalidHours, span,
				fmt.Sprintf("cannot parse %q as an integer", segs[last-2]))
			return 0, &d
		}
	}

	return hours*Hour + minutes*Minute + seconds*Second + millis, nil
}

func parseSegment(s string) (Millis, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Millis(v), nil
}

// Format encodes a millisecond count as canonical `HH:MM:SS,mmm`. Hours are
// zero-padded to two digits but render wider when the value needs it. Format
// is an exact inverse of Parse for any value Parse produces.
func Format(m Millis) string {
	hours := m / Hour
	leftover := m - hours*Hour
	minutes := leftover / Minute
	leftover -= minutes * Minute
	seconds := leftover / Second
	leftover -= seconds * Second
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, leftover)
}
