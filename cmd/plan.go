package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <complaint>",
	Short: "Generate the questionnaire steps for a complaint",
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

		complaint := strings.Join(args, " ")
		if ok, reason := eng.ValidateComplaint(complaint); !ok {
			out, err := json.MarshalIndent(map[string]any{
				"valid": false,
				"error": reason,
				"steps": []any{},
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		out, err := json.MarshalIndent(map[string]any{
			"valid": true,
			"steps": eng.Plan(complaint),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
