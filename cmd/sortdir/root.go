package sortdir

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/sortdir/cmd/sortdir/commands/completion"
	configcmd "github.com/arthur-debert/sortdir/cmd/sortdir/commands/config"
	"github.com/arthur-debert/sortdir/cmd/sortdir/commands/organize"
	"github.com/arthur-debert/sortdir/cmd/sortdir/commands/restore"
	"github.com/arthur-debert/sortdir/cmd/sortdir/commands/status"
	topicscmd "github.com/arthur-debert/sortdir/cmd/sortdir/commands/topics"
	"github.com/arthur-debert/sortdir/internal/cli"
	"github.com/arthur-debert/sortdir/internal/version"
	"github.com/arthur-debert/sortdir/pkg/topics"
	"github.com/arthur-debert/sortdir/pkg/ui"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitOK          = 0
	ExitError       = 1
	ExitInterrupted = 130
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(cli.New())
}

func newRootCmd(app *cli.App) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "sortdir",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return stderrors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&app.Verbosity, cli.FlagVerbose, "v", MsgFlagVerbose)
	flags.BoolVarP(&app.Quiet, cli.FlagQuiet, "q", false, MsgFlagQuiet)
	flags.StringVar(&app.Format, cli.FlagFormat, "auto", MsgFlagFormat)
	flags.IntVar(&app.Workers, cli.FlagWorkers, 0, MsgFlagWorkers)
	flags.BoolVar(&app.StrictLog, cli.FlagStrictLog, false, MsgFlagStrictLog)
	flags.StringVar(&app.ConfigFile, cli.FlagConfig, "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc(cli.FlagFormat, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: MsgGroupCore},
		&cobra.Group{ID: "misc", Title: MsgGroupMisc},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Commit, version.Date))

	tm := newTopicManager()

	rootCmd.AddCommand(organize.NewCommand(app))
	rootCmd.AddCommand(restore.NewCommand(app))
	rootCmd.AddCommand(status.NewCommand(app))
	rootCmd.AddCommand(configcmd.NewCommand(app))
	rootCmd.AddCommand(topicscmd.NewCommand(tm))
	rootCmd.AddCommand(completion.NewCommand())

	tm.Install(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// newTopicManager loads the embedded help topics, rendered with glamour
// only when they go to a terminal.
func newTopicManager() *topics.TopicManager {
	opts := topics.Options{Renderer: &topics.PlainRenderer{}}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		opts.Renderer = topics.NewGlamourRenderer()
	}

	tm, err := topics.Default(opts)
	if err != nil {
		// The topics are embedded; failing to read them is a build problem.
		panic(err)
	}
	return tm
}

// Execute runs the command line under ctx and returns the process exit
// code. Errors are rendered in the selected output format on stderr.
func Execute(ctx context.Context, args []string) int {
	app := cli.New()
	rootCmd := newRootCmd(app)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	app.RenderError(rootCmd.ErrOrStderr(), err)
	if stderrors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	return ExitError
}
