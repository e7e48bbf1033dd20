package config

// Message constants
const (
	MsgShort = "Print the effective configuration"
	MsgLong  = `Print the configuration sortdir runs with, after applying the built-in
defaults, the config file, SORTDIR_* environment variables and flags, in
that order.

With --defaults, print a commented template of every setting instead,
ready to save as the config file.`
	MsgExample = `  sortdir config
  SORTDIR_ORGANIZE_WORKERS=2 sortdir config
  sortdir config --defaults > ~/.config/sortdir/config.toml`
	MsgFlagDefaults = "Print a commented template of the default configuration"
)
