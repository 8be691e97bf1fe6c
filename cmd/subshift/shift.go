package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subshift/internal/driver"
	"subshift/internal/observ"
	"subshift/internal/project"
	"subshift/internal/shift"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [flags] <file.srt> <delta>",
	Short: "Shift every timestamp in an SRT file",
	Long: `Shift parses an SRT file, moves every start/end timestamp by the given
delta, and writes the result back (in place by default).

The delta uses the timestamp grammar with an optional sign:
  +2          two seconds forward
  -1:30       ninety seconds back
  +0:0:5,250  5.25 seconds forward`,
	Args: cobra.ExactArgs(2),
	RunE: runShift,
}

func init() {
	shiftCmd.Flags().StringP("output", "o", "", "output file (default: same as input file)")
	shiftCmd.Flags().String("encoding", "", "input charset (utf8|latin1|windows-1252)")
	shiftCmd.Flags().Bool("backup", false, "write <file>.bak before overwriting the input")
	shiftCmd.Flags().Bool("no-backup", false, "never write a backup, overriding the config")
}

func runShift(cmd *cobra.Command, args []string) error {
	filePath, deltaText := args[0], args[1]

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	delta, d := shift.ParseDelta(deltaText)
	if d != nil {
		// у дельты нет файла, на который можно указать span'ом
		return fmt.Errorf("invalid delta %q: %s", deltaText, d.Message)
	}

	req, err := buildShiftRequest(cmd, cfg, filePath, delta)
	if err != nil {
		return err
	}

	result, err := driver.Shift(req)
	if err != nil {
		return fmt.Errorf("shift failed: %w", err)
	}

	if result.Bag.HasErrors() {
		return renderBag(cmd, cfg, result.Bag, result.FileSet)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "shifted %d record(s) by %s -> %s\n",
			len(result.Subtitles), delta, result.OutputPath)
	}

	return printTimings(cmd, result.Timing)
}

func buildShiftRequest(cmd *cobra.Command, cfg project.Config, filePath string, delta shift.Delta) (*driver.ShiftRequest, error) {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, fmt.Errorf("failed to get output flag: %w", err)
	}
	encoding, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding flag: %w", err)
	}
	if encoding == "" {
		encoding = cfg.Input.Encoding
	}
	backup, err := cmd.Flags().GetBool("backup")
	if err != nil {
		return nil, fmt.Errorf("failed to get backup flag: %w", err)
	}
	noBackup, err := cmd.Flags().GetBool("no-backup")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-backup flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	useBackup := backup || cfg.Output.Backup
	if noBackup {
		useBackup = false
	}

	return &driver.ShiftRequest{
		Path:           filePath,
		Delta:          delta,
		OutputPath:     output,
		Suffix:         cfg.Output.Suffix,
		Encoding:       encoding,
		Backup:         useBackup,
		MaxDiagnostics: maxDiagnostics,
	}, nil
}

func printTimings(cmd *cobra.Command, report observ.Report) error {
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if !timings || len(report.Phases) == 0 {
		return nil
	}
	fmt.Fprint(os.Stderr, report.Summary())
	return nil
}
