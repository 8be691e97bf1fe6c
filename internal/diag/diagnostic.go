package diag

import (
	"subshift/internal/source"
)

// Severity ранжирует диагностики. Пайплайн останавливается на первой
// Error-диагностике; Info и Warning зарезервированы для будущих проверок.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Note is a secondary location attached to a diagnostic, e.g. the number
// line of the record whose time line the primary span selects.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a located parse or shift failure. Primary points at the
// offending text in display-width columns; Code carries the reason tag.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
