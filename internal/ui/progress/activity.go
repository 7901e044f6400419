// Package progress shows activity while git talks to a remote.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/ttych/gitw/internal/ui/styles"
)

// Stop waits this long for the program to exit before clearing the line.
const stopTimeout = 500 * time.Millisecond

type labelMsg string

type activityModel struct {
	spin    spinner.Model
	label   string
	started time.Time
}

func (m activityModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m activityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if l, ok := msg.(labelMsg); ok {
		m.label = string(l)
		return m, nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m activityModel) View() tea.View {
	return tea.NewView(m.line(time.Since(m.started)))
}

// line is the rendered status line; the elapsed time shows once a
// full second has passed.
func (m activityModel) line(elapsed time.Duration) string {
	if m.label == "" {
		return ""
	}
	s := m.spin.View() + " " + m.label
	if elapsed >= time.Second {
		s += styles.MutedStyle.Render(fmt.Sprintf(" %s", elapsed.Truncate(time.Second)))
	}
	return s
}

// Activity is a one-line spinner labelled with the running git operation.
type Activity struct {
	out  io.Writer
	done chan struct{}

	mu      sync.Mutex
	label   string
	program *tea.Program
}

// NewActivity returns a stopped activity that draws on out.
func NewActivity(out io.Writer, label string) *Activity {
	return &Activity{out: out, label: label}
}

// Start draws the spinner until Stop. Starting twice is a no-op.
func (a *Activity) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.program != nil {
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.PrimaryStyle

	a.program = tea.NewProgram(
		activityModel{spin: sp, label: a.label, started: time.Now()},
		tea.WithoutSignalHandler(),
		tea.WithOutput(a.out),
		tea.WithInput(nil),
	)
	a.done = make(chan struct{})
	go func(p *tea.Program, done chan struct{}) {
		_, _ = p.Run()
		close(done)
	}(a.program, a.done)
}

// Relabel replaces the text next to the spinner.
func (a *Activity) Relabel(label string) {
	a.mu.Lock()
	a.label = label
	p := a.program
	a.mu.Unlock()

	if p != nil {
		p.Send(labelMsg(label))
	}
}

// Label returns the current text.
func (a *Activity) Label() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.label
}

// Stop ends the animation and clears the line. Stopping an activity that
// never started writes nothing.
func (a *Activity) Stop() {
	a.mu.Lock()
	p, done := a.program, a.done
	a.program = nil
	a.mu.Unlock()
	if p == nil {
		return
	}

	p.Quit()
	select {
	case <-done:
	case <-time.After(stopTimeout):
	}
	fmt.Fprint(a.out, "\r\033[K")
}

// Run shows label on out while fn runs. When enabled is false fn runs
// without any output.
func Run(out io.Writer, enabled bool, label string, fn func() error) error {
	if !enabled {
		return fn()
	}
	a := NewActivity(out, label)
	a.Start()
	defer a.Stop()
	return fn()
}
