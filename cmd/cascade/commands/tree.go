package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cascade/internal/app"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the option tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			checked, _ := cmd.Flags().GetStringSlice("checked")

			return c.app.Tree(cmd.Context(), app.TreeOptions{
				File:    file,
				Checked: checked,
			})
		},
	}
	cmd.Flags().StringSlice("checked", nil, "Key paths to mark as checked, e.g. zhejiang/hangzhou (repeatable)")
	return cmd
}
