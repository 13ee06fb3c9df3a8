package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/notify/pkg/creds"
	"tableflip.dev/notify/pkg/runner/auth"
)

func addAuth(topLevel *cobra.Command) {
	clear := false

	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"connect"},
		Short:   "Connect to a Notion workspace via OAuth",
		Example: `
notify auth
notify auth --clear
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := creds.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			store, err := creds.Open(cfg)
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Auth{
				ClientID:     cfg.ClientID(),
				ClientSecret: cfg.ClientSecret(),
				Store:        store,
				Clear:        clear,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the stored token without re-authenticating.")

	topLevel.AddCommand(cmd)
}
