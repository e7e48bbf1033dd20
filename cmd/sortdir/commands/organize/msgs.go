package organize

// Message constants
const (
	MsgShort = "Sort every file of a directory into per-extension folders"
	MsgLong  = `Organize walks <dir> recursively and moves each regular file into
<dir>/<extension>/, or into the no-extension folder when the name has no
extension. Name clashes get a numbered suffix such as "a (1).txt".
Directories left empty are removed afterwards, and every change is written
to <dir>/.sortdir_log.

Running organize again is safe: files already sorted by an earlier run are
left alone and only new files move. See "sortdir help idempotency".`
	MsgExample = `  sortdir organize ~/Downloads            # Sort Downloads
  sortdir organize --workers 1 .          # One move at a time
  sortdir organize --format json ~/inbox  # Machine readable summary`
)
