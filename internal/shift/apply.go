package shift

import (
	"fmt"

	"subshift/internal/diag"
	"subshift/internal/srt"
	"subshift/internal/timecode"
)

// Apply shifts every record's start and end times by the delta, in place.
//
// The transform is all-or-nothing: for a negative delta every record is
// validated before any is touched, and a record whose time would underflow
// zero aborts the whole operation with a NegativeResult diagnostic pointing
// at that record's time line. Timestamps are unsigned; wrapping one around
// would be a silent corruption, not a shift.
func Apply(subs []srt.Subtitle, d Delta) *diag.Diagnostic {
	if d.IsZero() {
		return nil
	}
	if !d.Negative {
		for i := range subs {
			subs[i].From += d.Millis
			subs[i].To += d.Millis
		}
		return nil
	}

	for i := range subs {
		if subs[i].From < d.Millis || subs[i].To < d.Millis {
			dg := diag.NewError(diag.ShiftNegativeResult, subs[i].TimeSpan,
				fmt.Sprintf("shifting subtitle %d by -%s would produce a negative timestamp",
					subs[i].Number, timecode.Format(d.Millis))).
				WithNote(subs[i].NumberSpan, "the record is declared here")
			return &dg
		}
	}
	for i := range subs {
		subs[i].From -= d.Millis
		subs[i].To -= d.Millis
	}
	return nil
}
