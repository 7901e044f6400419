package git

import "strings"

// RemoteMode is the direction a remote URL is used for.
type RemoteMode string

// Remote modes as printed by `git remote -v`.
const (
	ModeFetch RemoteMode = "fetch"
	ModePush  RemoteMode = "push"
)

// RemoteRef is a named remote with its fetch and push URLs.
type RemoteRef struct {
	Name  string `json:"name"`
	Fetch string `json:"fetch,omitempty"`
	Push  string `json:"push,omitempty"`
}

// URL returns the fetch URL, or the push URL when there is none.
func (r *RemoteRef) URL() string {
	if r.Fetch != "" {
		return r.Fetch
	}
	return r.Push
}

// Update fills the URLs r lacks from other. Nothing changes when the names
// differ, and URLs r already has are never overwritten.
func (r *RemoteRef) Update(other *RemoteRef) *RemoteRef {
	if other == nil || other == r || other.Name != r.Name {
		return r
	}
	if r.Fetch == "" {
		r.Fetch = other.Fetch
	}
	if r.Push == "" {
		r.Push = other.Push
	}
	return r
}

// ParseRemoteLine parses one `git remote -v` line:
//
//	NAME SP+ URL SP+ (fetch|push)
//
// NAME is made of word characters ([A-Za-z0-9_]). Returns nil for lines
// that do not match.
func ParseRemoteLine(line string) *RemoteRef {
	fields := strings.Fields(line)
	if len(fields) != 3 || !isWord(fields[0]) {
		return nil
	}

	name, url := fields[0], fields[1]
	switch fields[2] {
	case "(" + string(ModeFetch) + ")":
		return &RemoteRef{Name: name, Fetch: url}
	case "(" + string(ModePush) + ")":
		return &RemoteRef{Name: name, Push: url}
	}
	return nil
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}

// RemoteRefs indexes remotes by name and by URL.
type RemoteRefs struct {
	refs   []*RemoteRef
	byName map[string]*RemoteRef
	byURL  map[string][]*RemoteRef
}

// NewRemoteRefs builds the indexes. Nil entries are dropped. When two
// entries share a name, the later one is found by name.
func NewRemoteRefs(refs []*RemoteRef) *RemoteRefs {
	rs := &RemoteRefs{
		byName: make(map[string]*RemoteRef),
		byURL:  make(map[string][]*RemoteRef),
	}
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		rs.refs = append(rs.refs, ref)
		rs.byName[ref.Name] = ref
		if url := ref.URL(); url != "" {
			rs.byURL[url] = append(rs.byURL[url], ref)
		}
	}
	return rs
}

// ParseRemoteRefs parses `git remote -v` output. Lines for the same name
// are merged into one RemoteRef, first URL per mode wins. Remotes keep the
// order their names were first seen. Malformed lines are skipped.
func ParseRemoteRefs(output string) *RemoteRefs {
	var order []*RemoteRef
	seen := make(map[string]*RemoteRef)

	for _, line := range strings.Split(output, "\n") {
		ref := ParseRemoteLine(line)
		if ref == nil {
			continue
		}
		if existing, ok := seen[ref.Name]; ok {
			existing.Update(ref)
			continue
		}
		seen[ref.Name] = ref
		order = append(order, ref)
	}
	return NewRemoteRefs(order)
}

// All returns the remotes in order.
func (rs *RemoteRefs) All() []*RemoteRef {
	out := make([]*RemoteRef, len(rs.refs))
	copy(out, rs.refs)
	return out
}

// Names returns the remote names in order.
func (rs *RemoteRefs) Names() []string {
	names := make([]string, 0, len(rs.refs))
	for _, ref := range rs.refs {
		names = append(names, ref.Name)
	}
	return names
}

// ByName returns the remote called name.
func (rs *RemoteRefs) ByName(name string) (*RemoteRef, bool) {
	ref, ok := rs.byName[name]
	return ref, ok
}

// ByURL returns the remotes whose URL is url, or an empty slice.
func (rs *RemoteRefs) ByURL(url string) []*RemoteRef {
	refs := rs.byURL[url]
	out := make([]*RemoteRef, len(refs))
	copy(out, refs)
	return out
}

// Len returns the number of remotes.
func (rs *RemoteRefs) Len() int {
	return len(rs.refs)
}
