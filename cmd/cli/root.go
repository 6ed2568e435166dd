// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"
	"os"

	"numcheck/internal/classifier"
	"numcheck/internal/config"
	"numcheck/internal/logger"
	"numcheck/internal/processor"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Exit codes returned by the binary.
const (
	exitOK         = 0
	exitError      = 1
	exitParseError = 2
)

var (
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

func RunCLI() {
	os.Exit(execute(newRootCmd(), os.Args[1:]))
}

// execute runs cmd with args and maps the outcome to an exit code. Errors are
// reported here, once, on the command's stderr.
func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if cerr := logger.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to close log file: %w", cerr)
	}
	if err == nil {
		return exitOK
	}

	errorPrinter(cmd.ErrOrStderr()).Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	if classifier.IsParseError(err) {
		return exitParseError
	}
	return exitError
}

// errorPrinter returns errorColor when w is a terminal. fatih/color only looks
// at stdout, so a redirected stderr gets a plain printer.
func errorPrinter(w io.Writer) *color.Color {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return errorColor
	}
	plain := color.New(color.FgRed)
	plain.DisableColor()
	return plain
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numcheck",
		Short: "Tell whether a number is above 10",
		Long: `Prompts for a number on standard input, reads one line and reports whether
the number is above 10 or less than or equal to 10.

Each run appends one JSON record to ~/.local/state/numcheck/app.log
($XDG_STATE_HOME/numcheck/app.log). Set log_to_file: false in the config
file to turn this off.

Ambient settings (logging, colors) are read from ~/.config/numcheck/config.yaml.
The threshold itself is fixed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return applyConfig(cfg, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New().String()
			result, err := processor.Run(cmd.InOrStdin(), cmd.OutOrStdout())
			logRun(runID, "cli", result, err)
			return err
		},
	}

	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// applyConfig sets up colors and logging from cfg.
func applyConfig(cfg config.Config, stderr io.Writer) error {
	if !cfg.Color {
		color.NoColor = true
	}

	logPath := ""
	if cfg.LogFile != "" {
		resolved, err := config.ResolvePath(cfg.LogFile)
		if err != nil {
			return err
		}
		logPath = resolved
	}

	logger.InitLogger(logger.Options{
		Level:    cfg.LogLevel,
		ToFile:   cfg.LogToFile,
		FilePath: logPath,
		ToStderr: cfg.LogToStderr,
		Stderr:   stderr,
	})
	logger.Debug("Logging configured.", "file", logger.Path(), "stderr", cfg.LogToStderr)
	return nil
}

// logRun records the outcome of one prompt.
func logRun(runID, mode string, result classifier.Result, err error) {
	switch {
	case err == nil:
		logger.Info("classification",
			"run_id", runID,
			"mode", mode,
			"value", result.Value,
			"class", result.Class.String(),
			"threshold", classifier.Threshold,
		)
	case classifier.IsParseError(err):
		logger.Warn("input rejected", "run_id", runID, "mode", mode, "error", err.Error())
	default:
		logger.Error("run failed", "run_id", runID, "mode", mode, "error", err.Error())
	}
}
