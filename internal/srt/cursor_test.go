package srt

import (
	"testing"

	"subshift/internal/source"
)

// helper to build a virtual file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.srt", []byte(content))
	return fs.Get(id)
}

func TestLineCursorSequentialLines(t *testing.T) {
	file := createFile("1\nhello\n")
	cur := NewLineCursor(file)

	line, span, ok := cur.Next()
	if !ok || line != "1" {
		t.Fatalf("first line = %q ok=%v, want \"1\"", line, ok)
	}
	if span.Start != 0 || span.End != 1 {
		t.Errorf("first span = %+v, want 0-1", span)
	}

	line, span, ok = cur.Next()
	if !ok || line != "hello" {
		t.Fatalf("second line = %q ok=%v, want \"hello\"", line, ok)
	}
	if span.Start != 2 || span.End != 7 {
		t.Errorf("second span = %+v, want 2-7", span)
	}

	// файл исчерпан: хвостовой \n не рождает пустую строку
	if _, _, ok = cur.Next(); ok {
		t.Error("expected EOF after last line")
	}
}

func TestLineCursorNoTrailingNewline(t *testing.T) {
	file := createFile("ab")
	cur := NewLineCursor(file)

	line, span, ok := cur.Next()
	if !ok || line != "ab" {
		t.Fatalf("line = %q ok=%v", line, ok)
	}
	if span.Start != 0 || span.End != 2 {
		t.Errorf("span = %+v, want 0-2", span)
	}
	// позиция продвигается на ширину + 1 даже без терминатора
	if cur.WidthOff() != 3 {
		t.Errorf("WidthOff = %d, want 3", cur.WidthOff())
	}
	if _, _, ok = cur.Next(); ok {
		t.Error("expected EOF")
	}
}

func TestLineCursorEmptyLines(t *testing.T) {
	file := createFile("a\n\nb\n")
	cur := NewLineCursor(file)

	line, _, _ := cur.Next()
	if line != "a" {
		t.Errorf("line 1 = %q", line)
	}
	line, span, ok := cur.Next()
	if !ok || line != "" {
		t.Errorf("line 2 = %q ok=%v, want empty line", line, ok)
	}
	if !span.Empty() || span.Start != 2 {
		t.Errorf("empty line span = %+v, want empty at 2", span)
	}
	line, _, _ = cur.Next()
	if line != "b" {
		t.Errorf("line 3 = %q", line)
	}
}

func TestLineCursorWideRunes(t *testing.T) {
	file := createFile("字幕\nok\n")
	cur := NewLineCursor(file)

	line, span, ok := cur.Next()
	if !ok || line != "字幕" {
		t.Fatalf("line = %q ok=%v", line, ok)
	}
	// две CJK-руны занимают 4 колонки
	if span.Start != 0 || span.End != 4 {
		t.Errorf("span = %+v, want 0-4", span)
	}

	_, span, _ = cur.Next()
	if span.Start != 5 || span.End != 7 {
		t.Errorf("second span = %+v, want 5-7", span)
	}
}
