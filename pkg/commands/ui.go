package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/notify/pkg/buckets"
	"tableflip.dev/notify/pkg/commands/options"
	"tableflip.dev/notify/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"dashboard"},
		Short:   "Interactive dashboard with in-place completion toggling",
		Example: `
notify ui
notify ui --course "Biology 101"
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			source, cfg, err := newSource()
			if err != nil {
				return output.HandleError(err)
			}
			s := ui.UI{
				Source:   source,
				Filter:   buckets.Filter{Course: fo.Course, Type: fo.Type},
				Later:    vo.Later || cfg.Later(),
				Location: location(cfg),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddFilterArgs(cmd, fo)
	options.AddViewArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}
