package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cascade/internal/app"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Print the option paths matching a query",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.Search(cmd.Context(), app.SearchOptions{
				File:      file,
				Query:     strings.Join(args, " "),
				Overrides: settingsOverrides(cmd),
				Matcher:   matcherName(cmd),
				JSON:      asJSON,
			})
		},
	}
	addSettingsFlags(cmd)
	addMatcherFlags(cmd)
	cmd.Flags().Bool("json", false, "Print the matches as JSON")
	return cmd
}
