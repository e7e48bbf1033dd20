// Package cli holds the state the sortdir commands share: global flags,
// the effective configuration and the output renderer.
package cli

import (
	"io"

	"github.com/arthur-debert/sortdir/pkg/config"
	"github.com/arthur-debert/sortdir/pkg/logging"
	"github.com/arthur-debert/sortdir/pkg/paths"
	"github.com/arthur-debert/sortdir/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Flag names shared between the root command and Setup
const (
	FlagVerbose   = "verbose"
	FlagQuiet     = "quiet"
	FlagFormat    = "format"
	FlagWorkers   = "workers"
	FlagStrictLog = "strict-log"
	FlagConfig    = "config"
)

// App is created once per root command. Flag values are bound to its
// fields; Setup turns them into configuration before any command runs.
type App struct {
	Verbosity  int
	Quiet      bool
	Format     string
	Workers    int
	StrictLog  bool
	ConfigFile string

	Config     *config.Config
	ConfigPath string
	Paths      paths.Paths

	format ui.Format
}

// New returns an App with nothing loaded yet.
func New() *App {
	return &App{format: ui.FormatAuto}
}

// Setup configures logging, resolves sortdir's directories and loads the
// configuration layers. Flags the user actually set win over every other
// layer.
func (a *App) Setup(cmd *cobra.Command) error {
	p, err := paths.New()
	if err != nil {
		return err
	}
	a.Paths = p

	logging.SetupLogger(logging.Options{
		Verbosity: a.Verbosity,
		Quiet:     a.Quiet,
		LogFile:   p.ToolLogFilePath(),
		Console:   cmd.ErrOrStderr(),
	})
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	configFile := a.ConfigFile
	if configFile == "" {
		configFile = p.ConfigFilePath()
	}

	res, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  a.overrides(cmd),
	})
	if err != nil {
		return err
	}
	a.Config = res.Config
	a.ConfigPath = res.LoadedFile
	if a.ConfigPath != "" {
		log.Debug().Str("file", a.ConfigPath).Msg("Loaded config file")
	}

	a.format, err = ui.ParseFormat(a.Config.Output.Format)
	return err
}

func (a *App) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	overrides := map[string]interface{}{}
	if flags.Changed(FlagWorkers) {
		overrides[config.KeyWorkers] = a.Workers
	}
	if flags.Changed(FlagStrictLog) {
		overrides[config.KeyStrict] = a.StrictLog
	}
	if flags.Changed(FlagFormat) {
		overrides[config.KeyFormat] = a.Format
	}
	return overrides
}

// OutputFormat is the format results are rendered in.
func (a *App) OutputFormat() ui.Format {
	return a.format
}

// Render writes result to the command's output in the configured format.
func (a *App) Render(cmd *cobra.Command, result interface{}) error {
	renderer, err := ui.NewRenderer(a.format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// RenderError reports err on w. JSON output stays JSON so scripts can parse
// failures too.
func (a *App) RenderError(w io.Writer, err error) {
	renderer, rerr := ui.NewRenderer(a.format, w)
	if rerr != nil {
		renderer, _ = ui.NewRenderer(ui.FormatText, w)
	}
	_ = renderer.RenderError(err)
}
