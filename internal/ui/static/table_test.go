package static

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttych/gitw/internal/git"
)

func TestRenderTableEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderTable([]string{"A"}, nil, nil))
	assert.Empty(t, RenderStatus(git.ParseStatus(""), false))
	assert.Empty(t, RenderRemotes(git.ParseRemoteRefs(""), false))
}

func TestStatusRows(t *testing.T) {
	t.Parallel()

	rows := StatusRows(git.ParseStatus("M  a.go\nR  old.go -> new.go\n?? c.go\n"))

	assert.Equal(t, [][]string{
		{"M ", "a.go", ""},
		{"R ", "new.go", "old.go"},
		{"??", "c.go", ""},
	}, rows)
}

func TestRenderStatusPlain(t *testing.T) {
	t.Parallel()

	out := RenderStatus(git.ParseStatus(" M main.go\n?? notes.txt\n"), false)

	assert.NotContains(t, out, "\x1b[")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "XY"))
	assert.Contains(t, lines[1], "main.go")
	assert.Contains(t, lines[2], "notes.txt")

	// columns are aligned
	assert.Equal(t, strings.Index(lines[0], "PATH"), strings.Index(lines[1], "main.go"))
}

func TestRemoteRows(t *testing.T) {
	t.Parallel()

	rows := RemoteRows(git.ParseRemoteRefs("origin f (fetch)\norigin p (push)\nup u (fetch)\n"))

	assert.Equal(t, [][]string{
		{"origin", "f", "p"},
		{"up", "u", ""},
	}, rows)
}

func TestRenderRemotesPlain(t *testing.T) {
	t.Parallel()

	out := RenderRemotes(git.ParseRemoteRefs("origin git@github.com:o/r.git (fetch)\norigin git@github.com:o/r.git (push)\n"), false)

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "git@github.com:o/r.git")
}

func TestRenderURLPlain(t *testing.T) {
	t.Parallel()

	u, err := git.ParseURL("git@github.com:ttych/gitw.git")
	require.NoError(t, err)

	out := RenderURL(u, false)
	assert.Contains(t, out, "host      github.com\n")
	assert.Contains(t, out, "basename  gitw\n")
}
