package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subshift/internal/diagfmt"
	"subshift/internal/driver"
	"subshift/internal/project"
	"subshift/internal/shift"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] <dir> <delta>",
	Short: "Shift every .srt file under a directory",
	Long: `Batch walks a directory recursively, shifting each .srt file by the same
delta. Files are processed in parallel; a failure in one file never touches
the others.`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "number of files to shift in parallel (0 = number of CPUs)")
	batchCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	batchCmd.Flags().String("encoding", "", "input charset (utf8|latin1|windows-1252)")
	batchCmd.Flags().Bool("backup", false, "write <file>.bak before overwriting each input")
	batchCmd.Flags().Bool("no-backup", false, "never write backups, overriding the config")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir, deltaText := args[0], args[1]

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	delta, d := shift.ParseDelta(deltaText)
	if d != nil {
		return fmt.Errorf("invalid delta %q: %s", deltaText, d.Message)
	}

	req, uiValue, err := buildBatchRequest(cmd, cfg, dir, delta)
	if err != nil {
		return err
	}

	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	// Один снапшот директории и для строк UI, и для воркеров: файл,
	// появившийся между обходами, не породит событие без строки.
	files, err := driver.ListSRTFiles(dir)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}
	req.Files = files

	var results []driver.BatchFileResult
	if mode.useTUI() {
		title := fmt.Sprintf("shifting %d file(s) by %s", len(files), delta)
		results, err = runBatchWithUI(cmd.Context(), title, files, req)
	} else {
		req.Progress = stderrSink{}
		results, err = driver.ShiftDir(cmd.Context(), req)
	}
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	return reportBatchResults(cmd, cfg, delta, results)
}

func buildBatchRequest(cmd *cobra.Command, cfg project.Config, dir string, delta shift.Delta) (*driver.BatchRequest, string, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get ui flag: %w", err)
	}
	encoding, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get encoding flag: %w", err)
	}
	if encoding == "" {
		encoding = cfg.Input.Encoding
	}
	backup, err := cmd.Flags().GetBool("backup")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get backup flag: %w", err)
	}
	noBackup, err := cmd.Flags().GetBool("no-backup")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get no-backup flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	useBackup := backup || cfg.Output.Backup
	if noBackup {
		useBackup = false
	}

	return &driver.BatchRequest{
		Dir:            dir,
		Delta:          delta,
		Suffix:         cfg.Output.Suffix,
		Encoding:       encoding,
		Backup:         useBackup,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
	}, uiValue, nil
}

// reportBatchResults печатает итог пакета и диагностики проваленных файлов.
func reportBatchResults(cmd *cobra.Command, cfg project.Config, delta shift.Delta, results []driver.BatchFileResult) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	shifted, failed := 0, 0
	for i := range results {
		r := &results[i]
		if !r.Failed() {
			shifted++
			continue
		}
		failed++
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		r.Result.Bag.Sort()
		if err := printDiagnostics(cmd, cfg, r.Result.Bag, r.Result.FileSet, diagfmt.PathModeRelative); err != nil {
			return err
		}
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "shifted %d file(s) by %s, %d failed\n",
			shifted, delta, failed)
	}
	if failed > 0 {
		cmd.SilenceUsage = true
		return errDiagnosticsReported
	}
	return nil
}

// stderrSink пишет события пакета построчно (режим без TUI).
type stderrSink struct{}

func (stderrSink) Send(ev driver.Event) {
	switch ev.Stage {
	case driver.StageDone:
		fmt.Fprintf(os.Stderr, "done    %s (%d record(s))\n", ev.Path, ev.Records)
	case driver.StageFailed:
		fmt.Fprintf(os.Stderr, "failed  %s: %s\n", ev.Path, ev.Message)
	}
}
