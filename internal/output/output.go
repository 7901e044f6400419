// Package output provides context-aware output for gitw.
// Stdout is used for primary data output (tables, paths, JSON).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

// Printer writes primary output (data, tables, paths, JSON) to stdout.
type Printer struct {
	w     io.Writer
	color bool
}

// New creates a Printer writing plain text to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewTerminal creates a Printer for f. When f is a terminal, styled
// output is enabled and colors are downsampled to what the terminal
// supports; otherwise ANSI sequences are stripped.
func NewTerminal(f *os.File) *Printer {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	cw := colorprofile.NewWriter(f, os.Environ())
	if !tty {
		cw.Profile = colorprofile.NoTTY
	}
	return &Printer{w: cw, color: tty && cw.Profile > colorprofile.Ascii}
}

// WithPrinter attaches a Printer writing to w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return WithPrinterValue(ctx, New(w))
}

// WithPrinterValue attaches p to the context.
func WithPrinterValue(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Color reports whether styled output should be produced.
func (p *Printer) Color() bool {
	return p.color
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
