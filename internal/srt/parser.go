package srt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"subshift/internal/diag"
	"subshift/internal/source"
	"subshift/internal/timecode"
)

// Parse consumes a whole normalized file and produces its records in order.
// The first failure aborts the parse: no partial record list is returned.
func Parse(file *source.File) ([]Subtitle, *diag.Diagnostic) {
	subs := make([]Subtitle, 0, 64)
	cur := NewLineCursor(file)

	for {
		numberLine, numberSpan, ok := cur.Next()
		if !ok {
			// Хвостовой пустой ввод — это нормальный конец.
			return subs, nil
		}

		number, err := strconv.ParseUint(numberLine, 10, 32)
		if err != nil {
			d := diag.NewError(diag.ParseInvalidNumber, numberSpan,
				fmt.Sprintf("cannot parse %q as an integer", numberLine))
			return nil, &d
		}

		timeLine, timeSpan, ok := cur.Next()
		if !ok {
			// Пустой span в текущей позиции сигналит об усечённом вводе.
			d := diag.NewError(diag.ParseMissingTime, timeSpan,
				fmt.Sprintf("expected a time line for subtitle %s", numberLine))
			return nil, &d
		}

		fromText, toText, found := strings.Cut(timeLine, ArrowSeparator)
		if !found {
			d := diag.NewError(diag.ParseMissingArrow, timeSpan,
				fmt.Sprintf("expected %q in the time line for subtitle %s", ArrowSeparator, numberLine))
			return nil, &d
		}

		fromSpan := source.Span{
			File:  file.ID,
			Start: timeSpan.Start,
			End:   timeSpan.Start + uint32(runewidth.StringWidth(fromText)),
		}
		from, d := timecode.Parse(fromText, fromSpan)
		if d != nil {
			return nil, d
		}

		// Конец указывает на свою колонку, а не на начало строки:
		// строим span сразу после начального и сдвигаем за разделитель.
		toSpan := source.Span{
			File:  file.ID,
			Start: fromSpan.End,
			End:   fromSpan.End + uint32(runewidth.StringWidth(toText)),
		}.ShiftRight(uint32(runewidth.StringWidth(ArrowSeparator)))
		to, d := timecode.Parse(toText, toSpan)
		if d != nil {
			return nil, d
		}

		var lines []string
		for {
			line, _, ok := cur.Next()
			if !ok || line == "" {
				// разделительная пустая строка съедается, но не хранится
				break
			}
			lines = append(lines, line)
		}

		subs = append(subs, Subtitle{
			Number:     uint32(number),
			From:       from,
			To:         to,
			Lines:      lines,
			NumberSpan: numberSpan,
			// вся строка времени: от начального таймстемпа до конечного
			TimeSpan: fromSpan.Cover(toSpan),
		})
	}
}
