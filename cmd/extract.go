package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <text>",
	Short: "Extract known symptoms from free text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		eng, cleanup, err := buildEngine(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		text := strings.Join(args, " ")
		symptoms := eng.Extract(text)
		if symptoms == nil {
			symptoms = []string{}
		}

		out, err := json.MarshalIndent(map[string]any{"symptoms": symptoms}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
