package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/notify/pkg/buckets"
	"tableflip.dev/notify/pkg/commands/options"
	"tableflip.dev/notify/pkg/runner/tasks"
)

func addTasks(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"list", "ls"},
		Short:   "List tasks grouped into overdue, today, tomorrow, this week, and completed",
		Example: `
notify tasks
notify tasks --course "Biology 101" --type Quiz
notify tasks --later --ids
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			source, cfg, err := newSource()
			if err != nil {
				return output.HandleError(err)
			}
			s := tasks.Tasks{
				Source:   source,
				Filter:   buckets.Filter{Course: fo.Course, Type: fo.Type},
				Later:    vo.Later || cfg.Later(),
				ShowID:   vo.ShowID,
				Facets:   vo.Facets,
				Location: location(cfg),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddFilterArgs(cmd, fo)
	options.AddViewArgs(cmd, vo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
