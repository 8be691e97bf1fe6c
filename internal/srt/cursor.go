package srt

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"

	"subshift/internal/source"
)

// LineCursor читает файл построчно, ведя две позиции: байтовую (для среза
// Content) и display-width (для Span'ов диагностик). Каждая потреблённая
// строка продвигает width-позицию на её экранную ширину плюс 1 за перевод
// строки.
type LineCursor struct {
	file     *source.File
	off      uint32 // байтовое смещение
	widthOff uint32 // display-width смещение
	limit    uint32
}

// NewLineCursor creates a cursor positioned at the start of the file.
func NewLineCursor(f *source.File) LineCursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return LineCursor{
		file:  f,
		limit: limit,
	}
}

// EOF проверяет, исчерпан ли файл.
func (c *LineCursor) EOF() bool {
	return c.off >= c.limit
}

// WidthOff returns the current display-width offset. Used for the empty
// span of a truncated-input diagnostic.
func (c *LineCursor) WidthOff() uint32 {
	return c.widthOff
}

// Next consumes one line (without its terminator) and returns it together
// with its span. ok is false once the file is exhausted; like Rust's
// str::lines, a trailing newline does not produce a final empty line.
func (c *LineCursor) Next() (line string, span source.Span, ok bool) {
	if c.EOF() {
		return "", source.Span{File: c.file.ID, Start: c.widthOff, End: c.widthOff}, false
	}

	start := c.off
	for c.off < c.limit && c.file.Content[c.off] != '\n' {
		c.off++
	}
	line = string(c.file.Content[start:c.off])
	if c.off < c.limit {
		c.off++ // съесть \n
	}

	width, err := safecast.Conv[uint32](runewidth.StringWidth(line))
	if err != nil {
		panic(fmt.Errorf("line width overflow: %w", err))
	}
	span = source.Span{File: c.file.ID, Start: c.widthOff, End: c.widthOff + width}
	c.widthOff += width + 1
	return line, span, true
}
