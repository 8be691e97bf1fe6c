package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"subshift/internal/diag"
	"subshift/internal/source"
)

var (
	errorColor     = color.New(color.FgRed, color.Bold)
	warningColor   = color.New(color.FgYellow, color.Bold)
	infoColor      = color.New(color.FgCyan, color.Bold)
	locationColor  = color.New(color.Bold)
	underlineColor = color.New(color.FgRed)
	gutterColor    = color.New(color.FgBlue)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> [<CODE>]: <reason>: <message>
// затем контекстную строку с подчёркиванием ^~~~ по Span.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := formatPath(f, fs, opts.PathMode)

	loc := fmt.Sprintf("%s:%d:%d:", path, start.Line, start.Col)
	sev := d.Severity.String()
	head := fmt.Sprintf("%s: %s", d.Code.String(), d.Message)
	if opts.Color {
		loc = locationColor.Sprint(loc)
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s %s %s\n", loc, sev, head)

	writeSourceContext(w, f, start, d.Primary, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", path, noteStart.Line, noteStart.Col, note.Msg)
		}
	}
}

// writeSourceContext печатает виновную строку и подчёркивание под span'ом.
// Вся арифметика в display-колонках: span измеряется так же, как строка
// выглядит в терминале, поэтому подчёркивание не съезжает на широких рунах.
func writeSourceContext(w io.Writer, f *source.File, start source.LineCol, span source.Span, opts PrettyOpts) {
	line := f.GetLine(start.Line)

	gutter := fmt.Sprintf("%4d | ", start.Line)
	pad := fmt.Sprintf("%4s | ", "")
	if opts.Color {
		gutter = gutterColor.Sprint(gutter)
		pad = gutterColor.Sprint(pad)
	}
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	// длина подчёркивания ограничена остатком строки; пустой span
	// (усечённый ввод) всё равно получает одну caret-колонку
	lineWidth := uint32(runewidth.StringWidth(line))
	col := start.Col - 1
	if col > lineWidth {
		col = lineWidth
	}
	length := span.Len()
	if col+length > lineWidth {
		length = lineWidth - col
	}
	marker := "^"
	if length > 1 {
		marker = "^" + strings.Repeat("~", int(length-1))
	}
	if opts.Color {
		marker = underlineColor.Sprint(marker)
	}
	fmt.Fprintf(w, "%s%s%s\n", pad, strings.Repeat(" ", int(col)), marker)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevWarning:
		return warningColor
	case diag.SevInfo:
		return infoColor
	default:
		return errorColor
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
