package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPrinterFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))
	require.NotNil(t, p)
	assert.Same(t, &buf, p.Writer())
	assert.False(t, p.Color())
}

func TestFromContextDefaultsToStdout(t *testing.T) {
	t.Parallel()

	p := FromContext(context.Background())
	require.NotNil(t, p)
	assert.Equal(t, os.Stdout, p.Writer())
}

func TestPrinterWrites(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Print("hello", " ", "world")
	p.Printf(" %d", 42)
	p.Println()
	p.Println("done")

	assert.Equal(t, "hello world 42\ndone\n", buf.String())
}

func TestNewTerminalStripsANSIWhenNotATTY(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	p := NewTerminal(f)
	assert.False(t, p.Color())

	p.Print("\x1b[1mbold\x1b[0m\n")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "bold\n", string(data))
}
