package restore

// Message constants
const (
	MsgShort = "Undo an organize run using its change log"
	MsgLong  = `Restore replays a change log backwards: it recreates the directories
organize removed, moves every file back to where it was, newest move first,
removes the folders left empty and deletes the change log.

The argument is the change log, usually <dir>/.sortdir_log. Passing the
directory itself works too. Files that are gone are reported and skipped;
a file whose original path is taken comes back under a numbered name.
See "sortdir help restore".`
	MsgExample = `  sortdir restore ~/Downloads/.sortdir_log
  sortdir restore ~/Downloads
  sortdir restore ~/.local/state/sortdir/orphaned/<run>.log`
)
