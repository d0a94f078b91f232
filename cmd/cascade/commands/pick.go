package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cascade/internal/app"
)

func (c *CLI) newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a path in the cascader",
		Long: "Pick a path in the cascader. Without a terminal the default value\n" +
			"(or --value) is resolved and printed instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			values, _ := cmd.Flags().GetStringSlice("value")
			watch, _ := cmd.Flags().GetBool("watch")
			copySelection, _ := cmd.Flags().GetBool("copy")
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.Pick(cmd.Context(), app.PickOptions{
				File:       file,
				Overrides:  settingsOverrides(cmd),
				Value:      values,
				Matcher:    matcherName(cmd),
				Watch:      watch,
				Copy:       copySelection,
				OutputMode: outputMode(cmd),
				JSON:       asJSON,
			})
		},
	}
	addSettingsFlags(cmd)
	addMatcherFlags(cmd)
	addOutputModeFlags(cmd)
	cmd.Flags().StringSlice("value", nil, "Initial value as a key path, e.g. zhejiang/hangzhou (repeatable)")
	cmd.Flags().BoolP("watch", "w", false, "Reload the options file when it changes")
	cmd.Flags().BoolP("copy", "c", false, "Copy the selection to the clipboard")
	cmd.Flags().Bool("json", false, "Print the selection as JSON")
	return cmd
}
