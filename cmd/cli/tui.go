// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"

	"numcheck/cmd/tui"
	"numcheck/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Ask for the number in an interactive terminal UI",
		Long: `Shows the same prompt inside a terminal UI. Press enter to classify the
typed number, esc or ctrl+c to leave. A value that is not an integer ends
the session with the same error as the plain prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New().String()
			result, err := tui.RunTUI(cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, tui.ErrCancelled) {
				logger.Info("prompt cancelled", "run_id", runID, "mode", "tui")
				return err
			}
			logRun(runID, "tui", result, err)
			return err
		},
	}
}
