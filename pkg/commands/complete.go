package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/notify/pkg/commands/options"
	"tableflip.dev/notify/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	id := ""

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"done", "toggle"},
		Short:   "Toggle a task's completion state",
		Example: `
notify complete <page id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task page id")
			}
			id = args[0]
			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			source, cfg, err := newSource()
			if err != nil {
				return output.HandleError(err)
			}
			s := complete.Complete{
				ID:       id,
				Source:   source,
				Later:    vo.Later || cfg.Later(),
				Location: location(cfg),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddViewArgs(cmd, vo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
