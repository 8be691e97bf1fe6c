package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Структура записи
	ParseInfo          Code = 1000
	ParseInvalidNumber Code = 1001
	ParseMissingTime   Code = 1002
	ParseMissingArrow  Code = 1003

	// Сегменты таймстемпа
	TimeInfo           Code = 2000
	TimeInvalidHours   Code = 2001
	TimeInvalidMinutes Code = 2002
	TimeInvalidSeconds Code = 2003
	TimeInvalidMillis  Code = 2004

	// Сдвиг
	ShiftInfo           Code = 3000
	ShiftNegativeResult Code = 3001
)

// codeDescription holds the short reason tag for each code. These strings
// are user-facing and stable: tooling matches on them.
var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	ParseInfo:          "record parser info",
	ParseInvalidNumber: "Invalid subtitle number",
	ParseMissingTime:   "Missing time line",
	ParseMissingArrow:  "Missing ' --> '",

	TimeInfo:           "time codec info",
	TimeInvalidHours:   "Invalid hours",
	TimeInvalidMinutes: "Invalid minutes",
	TimeInvalidSeconds: "Invalid seconds",
	TimeInvalidMillis:  "Invalid millis",

	ShiftInfo:           "shift info",
	ShiftNegativeResult: "NegativeResult",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SRT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("TIM%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SHF%04d", ic)
	}
	return "E0000"
}

// Title returns the short reason tag for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
