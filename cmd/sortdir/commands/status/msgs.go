package status

// Message constants
const (
	MsgShort = "Show whether a directory was organized and what restore would do"
	MsgLong  = `Status reads the change log of <dir> (the current directory by default)
without changing anything. It reports the folders organize created, how
many directories it removed, and how many recorded moves restore can still
undo. Files that are no longer where organize left them are listed.`
	MsgExample = `  sortdir status
  sortdir status ~/Downloads --format json`
)
