package diagfmt

import (
	"strings"
	"testing"

	"subshift/internal/diag"
	"subshift/internal/source"
	"subshift/internal/srt"
)

func parseFailing(t *testing.T, content string) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.srt", []byte(content))
	_, d := srt.Parse(fs.Get(id))
	if d == nil {
		t.Fatal("expected the parse to fail")
	}
	bag := diag.NewBag(16)
	bag.Add(*d)
	return bag, fs
}

func TestPrettyHeaderAndUnderline(t *testing.T) {
	bag, fs := parseFailing(t, "abc\n00:00:01,000 --> 00:00:02,000\nhi\n\n")

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	out := b.String()

	if !strings.Contains(out, "test.srt:1:1:") {
		t.Errorf("missing location header:\n%s", out)
	}
	if !strings.Contains(out, "ERROR [SRT1001]: Invalid subtitle number") {
		t.Errorf("missing severity/reason:\n%s", out)
	}
	if !strings.Contains(out, "   1 | abc") {
		t.Errorf("missing source line:\n%s", out)
	}
	// подчёркивание шириной в строку "abc"
	if !strings.Contains(out, "     | ^~~") {
		t.Errorf("missing underline:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color codes leaked without Color option:\n%s", out)
	}
}

func TestPrettyEndTimestampColumn(t *testing.T) {
	bag, fs := parseFailing(t, "1\n00:00:01,000 --> bad\nhi\n\n")

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	out := b.String()

	// конечный таймстемп начинается в колонке 18 второй строки
	if !strings.Contains(out, "test.srt:2:18:") {
		t.Errorf("wrong location header:\n%s", out)
	}
	if !strings.Contains(out, "     | "+strings.Repeat(" ", 17)+"^~~") {
		t.Errorf("underline not at the end timestamp column:\n%s", out)
	}
}

func TestPrettyEmptySpanTruncatedInput(t *testing.T) {
	bag, fs := parseFailing(t, "1\n")

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	out := b.String()

	// пустой span всё равно получает одну caret-колонку
	if !strings.Contains(out, "^") {
		t.Errorf("expected a caret for the empty span:\n%s", out)
	}
	if !strings.Contains(out, "Missing time line") {
		t.Errorf("missing reason tag:\n%s", out)
	}
}

func TestPrettyWideRunesAlignment(t *testing.T) {
	// строка времени после CJK-текста: подчёркивание должно учитывать
	// двойную ширину рун в предыдущих строках (span-арифметика), а внутри
	// строки — начинаться с нужной display-колонки
	bag, fs := parseFailing(t, "1\n00:00:01,000 --> 00:00:02,000\n字幕テスト\n\nbad-number\n00:00:03,000 --> 00:00:04,000\nx\n\n")

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	out := b.String()

	if !strings.Contains(out, "test.srt:5:1:") {
		t.Errorf("wrong location for the bad number line:\n%s", out)
	}
	if !strings.Contains(out, "   5 | bad-number") {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "^~~~~~~~~~") {
		t.Errorf("underline should span all 10 columns:\n%s", out)
	}
}

func negativeResultDiag(fs *source.FileSet) diag.Diagnostic {
	id := fs.AddVirtual("test.srt", []byte("1\n00:00:01,000 --> 00:00:02,000\nhi\n\n"))
	return diag.NewError(diag.ShiftNegativeResult,
		source.Span{File: id, Start: 2, End: 31},
		"shifting subtitle 1 by -00:00:05,000 would produce a negative timestamp").
		WithNote(source.Span{File: id, Start: 0, End: 1}, "the record is declared here")
}

func TestPrettyShowNotes(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(16)
	bag.Add(negativeResultDiag(fs))

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{ShowNotes: true})
	out := b.String()

	if !strings.Contains(out, "note: test.srt:1:1: the record is declared here") {
		t.Errorf("missing note line:\n%s", out)
	}

	b.Reset()
	Pretty(&b, bag, fs, PrettyOpts{})
	if strings.Contains(b.String(), "note:") {
		t.Errorf("notes rendered without ShowNotes:\n%s", b.String())
	}
}

func TestJSONIncludesNotes(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(16)
	bag.Add(negativeResultDiag(fs))

	var b strings.Builder
	if err := JSON(&b, bag, fs, JSONOpts{IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		`"notes"`,
		`"message": "the record is declared here"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := parseFailing(t, "abc\n")

	var b strings.Builder
	if err := JSON(&b, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		`"code": "SRT1001"`,
		`"reason": "Invalid subtitle number"`,
		`"file": "test.srt"`,
		`"start_offset": 0`,
		`"end_offset": 3`,
		`"start_line": 1`,
		`"count": 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}
