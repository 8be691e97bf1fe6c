package driver

import (
	"subshift/internal/diag"
	"subshift/internal/source"
	"subshift/internal/srt"
)

// ParseResult содержит результат разбора одного файла.
type ParseResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Subtitles []srt.Subtitle
	Bag       *diag.Bag
}

// Parse loads and parses a single subtitle file without shifting it.
// A parse diagnostic lands in the Bag; an I/O failure is returned as error.
func Parse(path, encoding string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.LoadEncoded(path, encoding)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	subs, d := srt.Parse(file)
	if d != nil {
		bag.Add(*d)
	}

	return &ParseResult{
		FileSet:   fs,
		File:      file,
		Subtitles: subs,
		Bag:       bag,
	}, nil
}
