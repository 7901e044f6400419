package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want *RemoteRef
	}{
		{"fetch", "origin\tgit@github.com:ttych/gitw.git (fetch)", &RemoteRef{Name: "origin", Fetch: "git@github.com:ttych/gitw.git"}},
		{"push", "origin  https://example.com/r.git  (push)", &RemoteRef{Name: "origin", Push: "https://example.com/r.git"}},
		{"underscore name", "my_fork url (fetch)", &RemoteRef{Name: "my_fork", Fetch: "url"}},
		{"unknown mode", "origin url (pull)", nil},
		{"dashed name", "my-fork url (fetch)", nil},
		{"missing mode", "origin url", nil},
		{"extra field", "origin url (fetch) x", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseRemoteLine(tt.line))
		})
	}
}

func TestParseRemoteRefsMerge(t *testing.T) {
	t.Parallel()

	rs := ParseRemoteRefs("origin url1 (fetch)\norigin url2 (push)\n")

	require.Equal(t, 1, rs.Len())
	ref, ok := rs.ByName("origin")
	require.True(t, ok)
	assert.Equal(t, "url1", ref.Fetch)
	assert.Equal(t, "url2", ref.Push)
	assert.Equal(t, "url1", ref.URL())
}

func TestParseRemoteRefsFirstWriteWins(t *testing.T) {
	t.Parallel()

	rs := ParseRemoteRefs("origin url1 (fetch)\norigin other (fetch)\norigin url2 (push)\n")

	ref, ok := rs.ByName("origin")
	require.True(t, ok)
	assert.Equal(t, "url1", ref.Fetch)
	assert.Equal(t, "url2", ref.Push)
}

func TestParseRemoteRefsOrderAndIndex(t *testing.T) {
	t.Parallel()

	out := "upstream u (fetch)\n" +
		"origin o (fetch)\n" +
		"not a remote line\n" +
		"upstream u (push)\n" +
		"mirror u (push)\n" +
		"origin o (push)\n"
	rs := ParseRemoteRefs(out)

	assert.Equal(t, []string{"upstream", "origin", "mirror"}, rs.Names())

	byURL := rs.ByURL("u")
	require.Len(t, byURL, 2)
	assert.Equal(t, "upstream", byURL[0].Name)
	assert.Equal(t, "mirror", byURL[1].Name)

	assert.Empty(t, rs.ByURL("missing"))
}

func TestParseRemoteRefsEmpty(t *testing.T) {
	t.Parallel()

	rs := ParseRemoteRefs("")
	assert.Equal(t, 0, rs.Len())
	assert.Empty(t, rs.All())
	assert.Empty(t, rs.Names())
	assert.Empty(t, rs.ByURL(""))

	_, ok := rs.ByName("origin")
	assert.False(t, ok)
}

func TestRemoteRefUpdate(t *testing.T) {
	t.Parallel()

	r := &RemoteRef{Name: "origin", Fetch: "f"}
	r.Update(&RemoteRef{Name: "other", Push: "x"})
	assert.Empty(t, r.Push, "different names never merge")

	r.Update(&RemoteRef{Name: "origin", Fetch: "f2", Push: "p"})
	assert.Equal(t, "f", r.Fetch)
	assert.Equal(t, "p", r.Push)

	r.Update(nil)
	assert.Equal(t, "p", r.Push)
}

func TestRemoteRefURLFallsBackToPush(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "p", (&RemoteRef{Name: "o", Push: "p"}).URL())
}
