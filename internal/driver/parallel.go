package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"subshift/internal/shift"
)

// BatchRequest описывает пакетный сдвиг всех *.srt файлов директории.
type BatchRequest struct {
	Dir   string
	Delta shift.Delta
	// Files is the snapshot of relative paths to process. Empty means
	// ShiftDir walks Dir itself; a caller that already listed the directory
	// (for UI rows) passes its listing so both sides see the same files.
	Files          []string
	Suffix         string
	Encoding       string
	Backup         bool
	Jobs           int // 0 = NumCPU
	MaxDiagnostics int
	Progress       Sink
}

// BatchFileResult содержит исход одного файла пакета.
type BatchFileResult struct {
	Path   string // относительный путь
	Result *ShiftResult
	Err    error
}

// Failed reports whether the file produced diagnostics or an I/O error.
func (r *BatchFileResult) Failed() bool {
	return r.Err != nil || (r.Result != nil && r.Result.Bag.HasErrors())
}

// ListSRTFiles возвращает отсортированный список всех *.srt файлов в
// директории (рекурсивно), относительно dir.
func ListSRTFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".srt") {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ShiftDir shifts every *.srt file under req.Dir in parallel. Each file is
// an independent single-threaded pipeline run; parallelism only fans out
// across files. Per-file diagnostics and I/O errors are collected in the
// results, not returned — only a setup failure or context cancellation
// aborts the batch.
func ShiftDir(ctx context.Context, req *BatchRequest) ([]BatchFileResult, error) {
	files := req.Files
	if len(files) == 0 {
		var err error
		files, err = ListSRTFiles(req.Dir)
		if err != nil {
			return nil, err
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .srt files found under %s", req.Dir)
	}

	sink := req.Progress
	if sink == nil {
		sink = NopSink{}
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]BatchFileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sink.Send(Event{Path: rel, Stage: StageShifting})

			fileReq := &ShiftRequest{
				Path:           filepath.Join(req.Dir, rel),
				Delta:          req.Delta,
				Suffix:         req.Suffix,
				Encoding:       req.Encoding,
				Backup:         req.Backup,
				BaseDir:        req.Dir,
				MaxDiagnostics: req.MaxDiagnostics,
			}
			res, err := Shift(fileReq)
			results[i] = BatchFileResult{Path: rel, Result: res, Err: err}

			switch {
			case err != nil:
				sink.Send(Event{Path: rel, Stage: StageFailed, Message: err.Error()})
			case res.Bag.HasErrors():
				sink.Send(Event{Path: rel, Stage: StageFailed,
					Message: fmt.Sprintf("%d diagnostic(s)", res.Bag.Len())})
			default:
				sink.Send(Event{Path: rel, Stage: StageDone, Records: len(res.Subtitles)})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
