package status

import (
	"github.com/arthur-debert/sortdir/internal/cli"
	"github.com/arthur-debert/sortdir/pkg/commands"
	"github.com/spf13/cobra"
)

// NewCommand creates the status command
func NewCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:     "status [dir]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			result, err := commands.Status(commands.StatusOptions{
				Directory: dir,
				StrictLog: app.Config.ChangeLog.Strict,
			})
			if err != nil {
				return err
			}
			return app.Render(cmd, result)
		},
	}
}
