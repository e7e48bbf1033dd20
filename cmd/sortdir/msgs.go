package sortdir

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Sort a directory into per-extension folders, and put it back"

	// Group titles
	MsgGroupCore = "COMMANDS:"
	MsgGroupMisc = "MISC:"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagQuiet     = "Only report errors (overrides -v)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagWorkers   = "Files moved concurrently by organize (0 = one per CPU)"
	MsgFlagStrictLog = "Reject malformed change logs instead of reading them leniently"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/sortdir/config.toml)"

	MsgErrNoCommand = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/version-template.txt
	msgVersionTemplateRaw string
	// MsgVersionTemplate takes the commit and build date
	MsgVersionTemplate = msgVersionTemplateRaw
)
