package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cascade/internal/adapters/matcher"
	"go.trai.ch/cascade/internal/app"
)

// addSettingsFlags registers the flags that override options-file settings.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("multiple", "m", false, "Allow checking several paths")
	cmd.Flags().Bool("change-on-select", false, "Allow committing non-leaf nodes")
	cmd.Flags().Bool("show-search", true, "Show the search box")
	cmd.Flags().String("expand-trigger", "", "Expand nodes on: click or hover")
	cmd.Flags().String("display-strategy", "", "Show checked paths as: child or parent")
	cmd.Flags().String("separator", "", "Separator between labels in display text")
	cmd.Flags().String("placeholder", "", "Text shown while nothing is selected")
}

// settingsOverrides reads back the settings flags the user actually set.
func settingsOverrides(cmd *cobra.Command) app.SettingsOverrides {
	var o app.SettingsOverrides
	flags := cmd.Flags()
	if flags.Changed("multiple") {
		v, _ := flags.GetBool("multiple")
		o.Multiple = &v
	}
	if flags.Changed("change-on-select") {
		v, _ := flags.GetBool("change-on-select")
		o.ChangeOnSelect = &v
	}
	if flags.Changed("show-search") {
		v, _ := flags.GetBool("show-search")
		o.ShowSearch = &v
	}
	if flags.Changed("expand-trigger") {
		v, _ := flags.GetString("expand-trigger")
		o.ExpandTrigger = &v
	}
	if flags.Changed("display-strategy") {
		v, _ := flags.GetString("display-strategy")
		o.DisplayStrategy = &v
	}
	if flags.Changed("separator") {
		v, _ := flags.GetString("separator")
		o.Separator = &v
	}
	if flags.Changed("placeholder") {
		v, _ := flags.GetString("placeholder")
		o.Placeholder = &v
	}
	return o
}

func addMatcherFlags(cmd *cobra.Command) {
	cmd.Flags().String("matcher", string(matcher.NameSubstring), "Search filter: substring or fuzzy")
	cmd.Flags().Bool("fuzzy", false, "Use fuzzy matching (shorthand for --matcher=fuzzy)")
}

func matcherName(cmd *cobra.Command) string {
	if fuzzy, _ := cmd.Flags().GetBool("fuzzy"); fuzzy {
		return string(matcher.NameFuzzy)
	}
	name, _ := cmd.Flags().GetString("matcher")
	return name
}

func addOutputModeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
}

func outputMode(cmd *cobra.Command) string {
	if ci, _ := cmd.Flags().GetBool("ci"); ci {
		return "linear"
	}
	mode, _ := cmd.Flags().GetString("output-mode")
	return mode
}
