// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures the course/type facet filters. Empty means all.
type FilterOptions struct {
	Course string
	Type   string
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Course, "course", "c", "",
		"Only show tasks for this course.")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Only show tasks of this type.")
}

// ViewOptions controls how the bucket listing is rendered.
type ViewOptions struct {
	Later  bool
	ShowID bool
	Facets bool
}

// AddViewArgs wires view flags on the provided command.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.Later, "later", false,
		"Show a Later section for tasks beyond the week window or without a due date.")
	cmd.Flags().BoolVar(&o.ShowID, "ids", false,
		"Show page ids next to each task.")
	cmd.Flags().BoolVar(&o.Facets, "facets", false,
		"List the available course and type filter values.")
}
