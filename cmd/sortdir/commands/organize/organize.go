package organize

import (
	"github.com/arthur-debert/sortdir/internal/cli"
	"github.com/arthur-debert/sortdir/pkg/commands"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewCommand creates the organize command
func NewCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:     "organize <dir>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			log.Info().
				Str("directory", args[0]).
				Int("workers", cfg.Organize.Workers).
				Msg("Organizing directory")

			result, err := commands.Organize(cmd.Context(), commands.OrganizeOptions{
				Directory:           args[0],
				Workers:             cfg.Organize.Workers,
				NoExtensionDir:      cfg.Organize.NoExtensionDir,
				LowercaseExtensions: cfg.Organize.LowercaseExtensions,
				StrictLog:           cfg.ChangeLog.Strict,
				Paths:               app.Paths,
			})
			// An interrupted run or a persist failure still has a result
			// worth showing before the error.
			if result != nil {
				if renderErr := app.Render(cmd, result); renderErr != nil {
					return renderErr
				}
			}
			return err
		},
	}
}
