// Package changelog holds the record of what one organize run changed in a
// directory tree and its plain text form.
//
// The file lives inside the organized directory as .sortdir_log:
//
//	/abs/base
//	+ /abs/base/txt
//	/abs/base/old-subdir
//	/abs/base/old-subdir/a.txt -> /abs/base/txt/a.txt
//
// The first line is the base directory. Lines starting with "+ " are
// directories the run created, lines containing " -> " are moves and any
// other non-blank line is a directory the run removed. Restore reads the
// removed directories and the moves; created directories are informational
// and let a repeated organize skip its own buckets.
package changelog
