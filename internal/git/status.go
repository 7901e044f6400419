package git

import (
	"encoding/json"
	"strings"
)

// StatusCode is one column of a porcelain status entry.
type StatusCode byte

// Porcelain status codes.
const (
	Unmodified  StatusCode = ' '
	Modified    StatusCode = 'M'
	TypeChanged StatusCode = 'T'
	Added       StatusCode = 'A'
	Deleted     StatusCode = 'D'
	Renamed     StatusCode = 'R'
	Copied      StatusCode = 'C'
	Updated     StatusCode = 'U'
	Untracked   StatusCode = '?'
	Ignored     StatusCode = '!'
)

var statusNames = map[StatusCode]string{
	Unmodified:  "unmodified",
	Modified:    "modified",
	TypeChanged: "type changed",
	Added:       "added",
	Deleted:     "deleted",
	Renamed:     "renamed",
	Copied:      "copied",
	Updated:     "updated",
	Untracked:   "untracked",
	Ignored:     "ignored",
}

// String returns the human name of the code, or the code itself when unknown.
func (c StatusCode) String() string {
	if name, ok := statusNames[c]; ok {
		return name
	}
	return string(rune(c))
}

// Changed reports whether the code records a change. Unmodified, ignored
// and untracked are not changes; unknown codes are.
func (c StatusCode) Changed() bool {
	switch c {
	case Unmodified, Ignored, Untracked:
		return false
	}
	return true
}

// StatusFile is one entry of a porcelain status listing.
type StatusFile struct {
	Path        string
	OrigPath    string // set for renames and copies
	Index       StatusCode
	WorkingTree StatusCode
}

// NewStatusFile builds an entry from its two status codes.
func NewStatusFile(path string, index, workingTree StatusCode) *StatusFile {
	return &StatusFile{Path: path, Index: index, WorkingTree: workingTree}
}

// MarshalJSON encodes the entry with named status codes.
func (f *StatusFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path        string `json:"path"`
		OrigPath    string `json:"orig_path,omitempty"`
		Index       string `json:"index"`
		WorkingTree string `json:"working_tree"`
		Untracked   bool   `json:"untracked"`
	}{
		Path:        f.Path,
		OrigPath:    f.OrigPath,
		Index:       f.Index.String(),
		WorkingTree: f.WorkingTree.String(),
		Untracked:   f.IsUntracked(),
	})
}

// IndexChanged reports a staged change.
func (f *StatusFile) IndexChanged() bool {
	return f.Index.Changed()
}

// WorkingTreeChanged reports an unstaged change.
func (f *StatusFile) WorkingTreeChanged() bool {
	return f.WorkingTree.Changed()
}

// IsUntracked reports whether either column marks the path untracked.
func (f *StatusFile) IsUntracked() bool {
	return f.Index == Untracked || f.WorkingTree == Untracked
}

// Codes returns the two-character XY code, e.g. "M " or "??".
func (f *StatusFile) Codes() string {
	return string([]byte{byte(f.Index), byte(f.WorkingTree)})
}

// ParseStatusLine parses one porcelain v1 line:
//
//	XY PATH
//	XY ORIG_PATH -> PATH
//
// The "ORIG_PATH -> " part is only recognised when X or Y is a rename or
// copy, so other paths containing " -> " are kept whole. Everything after
// the separator is the path, whitespace included.
// Returns nil for lines that do not match.
func ParseStatusLine(line string) *StatusFile {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 4 || line[2] != ' ' {
		return nil
	}

	f := NewStatusFile(line[3:], StatusCode(line[0]), StatusCode(line[1]))
	if f.Index == Renamed || f.Index == Copied || f.WorkingTree == Renamed || f.WorkingTree == Copied {
		if orig, path, ok := strings.Cut(f.Path, " -> "); ok {
			f.OrigPath = orig
			f.Path = path
		}
	}
	if f.Path == "" {
		return nil
	}
	return f
}

// Status indexes the entries of a porcelain status listing by path.
type Status struct {
	files       []*StatusFile
	index       map[string]*StatusFile
	workingTree map[string]*StatusFile
	untracked   map[string]*StatusFile
}

// NewStatus builds a Status. Nil entries and entries without a path are
// dropped.
func NewStatus(files []*StatusFile) *Status {
	s := &Status{
		index:       make(map[string]*StatusFile),
		workingTree: make(map[string]*StatusFile),
		untracked:   make(map[string]*StatusFile),
	}
	for _, f := range files {
		if f == nil || f.Path == "" {
			continue
		}
		s.files = append(s.files, f)
		if f.IndexChanged() {
			s.index[f.Path] = f
		}
		if f.WorkingTreeChanged() {
			s.workingTree[f.Path] = f
		}
		if f.IsUntracked() {
			s.untracked[f.Path] = f
		}
	}
	return s
}

// ParseStatus parses `git status --porcelain` output. Blank and
// malformed lines are skipped.
func ParseStatus(output string) *Status {
	var files []*StatusFile
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if f := ParseStatusLine(line); f != nil {
			files = append(files, f)
		}
	}
	return NewStatus(files)
}

// Files returns all entries in listing order.
func (s *Status) Files() []*StatusFile {
	out := make([]*StatusFile, len(s.files))
	copy(out, s.files)
	return out
}

// Changed reports whether path has a staged or unstaged change.
func (s *Status) Changed(path string) bool {
	_, ok := s.ChangedFile(path)
	return ok
}

// ChangedFile returns the entry for path when it has a staged or
// unstaged change.
func (s *Status) ChangedFile(path string) (*StatusFile, bool) {
	if f, ok := s.index[path]; ok {
		return f, true
	}
	f, ok := s.workingTree[path]
	return f, ok
}

// Untracked reports whether path is untracked.
func (s *Status) Untracked(path string) bool {
	_, ok := s.untracked[path]
	return ok
}

// IndexChanged reports whether path has a staged change.
func (s *Status) IndexChanged(path string) bool {
	_, ok := s.index[path]
	return ok
}

// WorkingTreeChanged reports whether path has an unstaged change.
func (s *Status) WorkingTreeChanged(path string) bool {
	_, ok := s.workingTree[path]
	return ok
}

// Clean reports whether there are no changed or untracked entries.
func (s *Status) Clean() bool {
	return len(s.index) == 0 && len(s.workingTree) == 0 && len(s.untracked) == 0
}
