// Package shift applies a uniform time delta to parsed subtitle records.
package shift

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"subshift/internal/diag"
	"subshift/internal/source"
	"subshift/internal/timecode"
)

// Delta is a signed millisecond offset. The magnitude stays unsigned and the
// sign is tracked separately so the one unsigned codec serves both
// directions; a negative delta is valid where a negative timestamp is not.
type Delta struct {
	Millis   timecode.Millis
	Negative bool
}

// ParseDelta decodes a user-supplied adjustment such as "+2000",
// "-00:00:01,500" or "1:30". The sign characters are stripped and the rest
// goes through the timestamp grammar at offset 0.
func ParseDelta(text string) (Delta, *diag.Diagnostic) {
	neg := strings.HasPrefix(text, "-")
	clean := strings.Trim(text, "+-")

	span := source.Span{Start: 0, End: uint32(runewidth.StringWidth(clean))}
	m, d := timecode.Parse(clean, span)
	if d != nil {
		return Delta{}, d
	}
	return Delta{Millis: m, Negative: neg}, nil
}

// IsZero reports whether applying the delta is the identity transform.
func (d Delta) IsZero() bool {
	return d.Millis == 0
}

func (d Delta) String() string {
	sign := "+"
	if d.Negative {
		sign = "-"
	}
	return sign + timecode.Format(d.Millis)
}
