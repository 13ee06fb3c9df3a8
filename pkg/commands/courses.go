package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/notify/pkg/commands/options"
	"tableflip.dev/notify/pkg/runner/courses"
)

func addCourses(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Print the course lookup table",
		Example: `
notify courses
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			source, _, err := newSource()
			if err != nil {
				return output.HandleError(err)
			}
			s := courses.Courses{
				Source: source,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
