package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		protocol string
		user     string
		host     string
		path     string
		dirname  string
		basename string
	}{
		{"scp-like", "git@github.com:ttych/gitw.git", "ssh", "git", "github.com", "ttych/gitw", "ttych", "gitw"},
		{"https", "https://github.com/ttych/gitw.git", "https", "", "github.com", "ttych/gitw", "ttych", "gitw"},
		{"ssh uri", "ssh://git@example.com:2222/group/sub/repo", "ssh", "git", "example.com", "group/sub/repo", "group/sub", "repo"},
		{"no suffix", "https://example.com/repo", "https", "", "example.com", "repo", ".", "repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := ParseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.protocol, u.Protocol)
			assert.Equal(t, tt.user, u.User)
			assert.Equal(t, tt.host, u.Host)
			assert.Equal(t, tt.path, u.Path)
			assert.Equal(t, tt.dirname, u.PathDirname())
			assert.Equal(t, tt.basename, u.PathBasename())
			assert.Equal(t, tt.raw, u.String())
		})
	}
}

func TestParseURLLocalPath(t *testing.T) {
	t.Parallel()

	u, err := ParseURL("/srv/git/project.git")
	require.NoError(t, err)
	assert.Equal(t, "file", u.Protocol)
	assert.Equal(t, "project", u.PathBasename())
}

func TestParseURLEmpty(t *testing.T) {
	t.Parallel()

	_, err := ParseURL("  ")
	assert.Error(t, err)
}
