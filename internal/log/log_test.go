package log

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		quiet bool
		print func(l *Logger)
		want  string
	}{
		{"printf", false, func(l *Logger) { l.Printf("cloning %s into %d dirs", "origin", 2) }, "cloning origin into 2 dirs"},
		{"println", false, func(l *Logger) { l.Println("fetch", "done") }, "fetch done\n"},
		{"printf quiet", true, func(l *Logger) { l.Printf("hidden") }, ""},
		{"println quiet", true, func(l *Logger) { l.Println("hidden") }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.print(New(&buf, false, tt.quiet))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		dir     string
		want    string
	}{
		{"verbose with dir", true, false, "/repo", "[/repo] $ git status --porcelain (120ms)\n"},
		{"verbose without dir", true, false, "", "$ git status --porcelain (120ms)\n"},
		{"not verbose", false, false, "/repo", ""},
		{"quiet overrides verbose", true, true, "/repo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			done := New(&buf, tt.verbose, tt.quiet).Command(tt.dir, "git", "status", "--porcelain")
			done(120 * time.Millisecond)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("key value pairs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, true, false).Debug("dropped option", "label", "porcelain", "registry", "commit")
		assert.Equal(t, "dropped option label=porcelain registry=commit\n", buf.String())
	})

	t.Run("odd keyvals drops last", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, true, false).Debug("msg", "key1", "val1", "orphan")
		assert.Equal(t, "msg key1=val1\n", buf.String())
	})

	t.Run("silent unless verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Debug("hidden", "key", "val")
		New(&buf, true, true).Debug("hidden", "key", "val")
		assert.Zero(t, buf.Len())
	})
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    bool
	}{
		{"verbose only", true, false, true},
		{"quiet only", false, true, false},
		{"both", true, true, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, New(io.Discard, tt.verbose, tt.quiet).IsVerbose())
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	assert.Same(t, l, FromContext(WithLogger(context.Background(), l)))
	assert.Same(t, &buf, l.Writer())

	fallback := FromContext(context.Background())
	assert.NotNil(t, fallback)
	assert.Equal(t, io.Discard, fallback.Writer())
	fallback.Debug("nowhere")
}
