package restore

import (
	"os"

	"github.com/arthur-debert/sortdir/internal/cli"
	"github.com/arthur-debert/sortdir/pkg/commands"
	"github.com/arthur-debert/sortdir/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewCommand creates the restore command
func NewCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:     "restore <logfile|dir>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile := logFileArg(args[0])
			log.Info().Str("logFile", logFile).Msg("Restoring from change log")

			result, err := commands.Restore(commands.RestoreOptions{
				LogFile:   logFile,
				StrictLog: app.Config.ChangeLog.Strict,
				Paths:     app.Paths,
			})
			if err != nil {
				return err
			}
			return app.Render(cmd, result)
		},
	}
}

// logFileArg accepts an organized directory in place of its change log.
func logFileArg(arg string) string {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return paths.LogFilePath(arg)
	}
	return arg
}
