package types

// MoveRecord is one completed rename. Both paths are absolute.
type MoveRecord struct {
	OldPath string `json:"oldPath"`
	NewPath string `json:"newPath"`
}

// Reversed returns the record that undoes m.
func (m MoveRecord) Reversed() MoveRecord {
	return MoveRecord{OldPath: m.NewPath, NewPath: m.OldPath}
}

// Failure describes one item a batch phase had to skip.
type Failure struct {
	Path  string `json:"path"`
	Code  string `json:"code"`
	Error string `json:"error"`
}
