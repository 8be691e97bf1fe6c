package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"subshift/internal/srt"
	"subshift/internal/timecode"
)

// FormatRecordsPretty выводит таблицу распарсенных записей (команда inspect).
func FormatRecordsPretty(w io.Writer, subs []srt.Subtitle) error {
	for i := range subs {
		sub := &subs[i]
		_, err := fmt.Fprintf(w, "%6d  %s%s%s  %d line(s)\n",
			sub.Number,
			timecode.Format(sub.From), srt.ArrowSeparator, timecode.Format(sub.To),
			len(sub.Lines))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d record(s)\n", len(subs))
	return err
}

// RecordJSON представляет одну запись для JSON-вывода.
type RecordJSON struct {
	Number uint32 `json:"number"`
	From   string `json:"from"`
	To     string `json:"to"`
	FromMS uint32 `json:"from_ms"`
	ToMS   uint32 `json:"to_ms"`
	Text   string `json:"text"`
}

// RecordsOutput представляет корневую структуру JSON вывода записей.
type RecordsOutput struct {
	Records []RecordJSON `json:"records"`
	Count   int          `json:"count"`
}

// FormatRecordsJSON сериализует записи для машинной обработки.
func FormatRecordsJSON(w io.Writer, subs []srt.Subtitle) error {
	out := RecordsOutput{
		Records: make([]RecordJSON, 0, len(subs)),
		Count:   len(subs),
	}
	for i := range subs {
		sub := &subs[i]
		out.Records = append(out.Records, RecordJSON{
			Number: sub.Number,
			From:   timecode.Format(sub.From),
			To:     timecode.Format(sub.To),
			FromMS: uint32(sub.From),
			ToMS:   uint32(sub.To),
			Text:   strings.Join(sub.Lines, "\n"),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
