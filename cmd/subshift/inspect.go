package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subshift/internal/diagfmt"
	"subshift/internal/driver"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] <file.srt>",
	Short: "Parse an SRT file and print its records without modifying it",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	inspectCmd.Flags().String("encoding", "", "input charset (utf8|latin1|windows-1252)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
		// поддерживаемые форматы
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	encoding, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return fmt.Errorf("failed to get encoding flag: %w", err)
	}
	if encoding == "" {
		encoding = cfg.Input.Encoding
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(args[0], encoding, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}
	if result.Bag.HasErrors() {
		return renderBag(cmd, cfg, result.Bag, result.FileSet)
	}

	if format == "json" {
		return diagfmt.FormatRecordsJSON(cmd.OutOrStdout(), result.Subtitles)
	}
	return diagfmt.FormatRecordsPretty(cmd.OutOrStdout(), result.Subtitles)
}
