package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cascade/internal/app"
)

func (c *CLI) newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Choose from a flat, filterable list of paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.Select(cmd.Context(), app.SelectOptions{
				File:       file,
				Overrides:  settingsOverrides(cmd),
				OutputMode: outputMode(cmd),
				JSON:       asJSON,
			})
		},
	}
	addSettingsFlags(cmd)
	addOutputModeFlags(cmd)
	cmd.Flags().Bool("json", false, "Print the chosen paths as JSON")
	return cmd
}
