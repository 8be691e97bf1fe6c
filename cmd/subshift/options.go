package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subshift/internal/diag"
	"subshift/internal/diagfmt"
	"subshift/internal/project"
	"subshift/internal/source"
)

// errDiagnosticsReported сигналит main'у про ненулевой код выхода после
// того, как диагностики уже напечатаны.
var errDiagnosticsReported = errors.New("aborted due to previous diagnostics")

// loadProjectConfig ищет subshift.toml от текущей директории вверх.
func loadProjectConfig() (project.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return project.Default(), nil
	}
	return project.LoadFromDir(wd)
}

// resolveColor decides whether to colorize output for the given stream.
// The --color flag wins; otherwise the config value applies; "auto" means
// "only when the stream is a terminal".
func resolveColor(cmd *cobra.Command, cfg project.Config, f *os.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	if mode == "" {
		mode = cfg.Display.Color
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

// printDiagnostics пишет диагностики в stderr: pretty по умолчанию,
// JSON при --json.
func printDiagnostics(cmd *cobra.Command, cfg project.Config, bag *diag.Bag, fs *source.FileSet, pathMode diagfmt.PathMode) error {
	jsonOut, err := cmd.Root().PersistentFlags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	if jsonOut {
		return diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			PathMode:         pathMode,
		})
	}

	useColor, err := resolveColor(cmd, cfg, os.Stderr)
	if err != nil {
		return err
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor,
		ShowNotes: true,
		PathMode:  pathMode,
	})
	return nil
}

// renderBag печатает диагностики и возвращает sentinel-ошибку для
// ненулевого кода выхода.
func renderBag(cmd *cobra.Command, cfg project.Config, bag *diag.Bag, fs *source.FileSet) error {
	bag.Sort()
	if err := printDiagnostics(cmd, cfg, bag, fs, diagfmt.PathModeAuto); err != nil {
		return err
	}
	cmd.SilenceUsage = true
	return errDiagnosticsReported
}
