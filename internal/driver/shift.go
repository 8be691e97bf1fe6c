package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"subshift/internal/diag"
	"subshift/internal/observ"
	"subshift/internal/shift"
	"subshift/internal/source"
	"subshift/internal/srt"
)

// ShiftRequest describes one file's shift pipeline run.
type ShiftRequest struct {
	Path  string
	Delta shift.Delta
	// OutputPath overrides the destination; empty means Path plus Suffix
	// (and a bare Path when Suffix is empty too — shift in place).
	OutputPath string
	Suffix     string
	Encoding   string
	// Backup writes <input>.bak before overwriting the input file.
	Backup bool
	// BaseDir anchors relative path rendering in diagnostics (batch mode).
	BaseDir        string
	MaxDiagnostics int
}

// ShiftResult содержит результат пайплайна для одного файла.
type ShiftResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Subtitles []srt.Subtitle
	Bag       *diag.Bag
	// OutputPath is where the result was written; empty when the pipeline
	// stopped on a diagnostic.
	OutputPath string
	Timing     observ.Report
}

// Shift runs the whole pipeline for one file: load → parse → shift →
// serialize → write. Diagnostics land in the Bag and stop the pipeline
// before anything is written; I/O failures are returned as plain errors.
func Shift(req *ShiftRequest) (*ShiftResult, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()
	if req.BaseDir != "" {
		fs = source.NewFileSetWithBase(req.BaseDir)
	}
	bag := diag.NewBag(req.MaxDiagnostics)
	result := &ShiftResult{FileSet: fs, Bag: bag}

	phase := timer.Begin("load")
	fileID, err := fs.LoadEncoded(req.Path, req.Encoding)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	result.File = file
	timer.End(phase, fmt.Sprintf("%d bytes", len(file.Content)))

	phase = timer.Begin("parse")
	subs, d := srt.Parse(file)
	timer.End(phase, fmt.Sprintf("%d records", len(subs)))
	if d != nil {
		bag.Add(*d)
		result.Timing = timer.Report()
		return result, nil
	}
	result.Subtitles = subs

	phase = timer.Begin("shift")
	d = shift.Apply(subs, req.Delta)
	timer.End(phase, req.Delta.String())
	if d != nil {
		bag.Add(*d)
		result.Timing = timer.Report()
		return result, nil
	}

	phase = timer.Begin("serialize")
	output := srt.Write(subs)
	timer.End(phase, "")

	phase = timer.Begin("write")
	outPath := req.outputPath()
	if err := writeOutput(req, outPath, output); err != nil {
		return nil, err
	}
	timer.End(phase, outPath)

	result.OutputPath = outPath
	result.Timing = timer.Report()
	return result, nil
}

func (req *ShiftRequest) outputPath() string {
	if req.OutputPath != "" {
		return req.OutputPath
	}
	if req.Suffix == "" {
		return req.Path
	}
	ext := filepath.Ext(req.Path)
	return strings.TrimSuffix(req.Path, ext) + req.Suffix + ext
}

func writeOutput(req *ShiftRequest, outPath string, output []byte) error {
	encoded, err := source.EncodeCharset(output, req.Encoding)
	if err != nil {
		return err
	}

	if req.Backup && samePath(outPath, req.Path) {
		original, err := os.ReadFile(req.Path)
		if err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		if err := os.WriteFile(req.Path+".bak", original, 0o644); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
	}

	// #nosec G306 -- subtitle files are plain shareable text
	return os.WriteFile(outPath, encoded, 0o644)
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
