package git

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

// URL is a parsed repository location: scp-like (git@host:org/repo.git),
// a URI (https://host/org/repo.git, ssh://...) or a local path.
type URL struct {
	Raw      string `json:"url"`
	Protocol string `json:"protocol"`
	User     string `json:"user,omitempty"`
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	// Path has the ".git" suffix and surrounding slashes removed.
	Path string `json:"path"`
}

// ParseURL parses a repository URL.
func ParseURL(raw string) (*URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty repository url")
	}
	ep, err := transport.NewEndpoint(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid repository url %q: %w", raw, err)
	}

	p := strings.TrimSuffix(ep.Path, ".git")
	p = strings.Trim(p, "/")

	return &URL{
		Raw:      raw,
		Protocol: ep.Protocol,
		User:     ep.User,
		Host:     ep.Host,
		Port:     ep.Port,
		Path:     p,
	}, nil
}

// PathDirname returns the path without its last element, e.g. "org".
func (u *URL) PathDirname() string {
	return path.Dir(u.Path)
}

// PathBasename returns the last path element, e.g. "repo".
func (u *URL) PathBasename() string {
	return path.Base(u.Path)
}

// String returns the URL as given.
func (u *URL) String() string {
	return u.Raw
}
