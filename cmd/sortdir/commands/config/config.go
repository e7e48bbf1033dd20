package config

import (
	"fmt"

	"github.com/arthur-debert/sortdir/internal/cli"
	sdconfig "github.com/arthur-debert/sortdir/pkg/config"
	"github.com/arthur-debert/sortdir/pkg/ui"
	"github.com/spf13/cobra"
)

// NewCommand creates the config command
func NewCommand(app *cli.App) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), sdconfig.GenerateConfigContent())
				return err
			}

			if app.OutputFormat() == ui.FormatJSON {
				return app.Render(cmd, app.Config)
			}

			content, err := sdconfig.ToTOML(app.Config)
			if err != nil {
				return err
			}
			if app.ConfigPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", app.ConfigPath)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}
