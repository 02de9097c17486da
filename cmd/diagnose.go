package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <symptom>...",
	Short: "Run the local ensemble against a set of symptoms",
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

		result := eng.Diagnose(args)
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
