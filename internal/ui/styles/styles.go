// Package styles provides shared lipgloss styles for UI components.
//
// Colors come from the active [Theme]; call [Use] after loading the
// configuration and before rendering anything.
package styles

import (
	"image/color"
	"sort"

	"charm.land/lipgloss/v2"

	"github.com/ttych/gitw/internal/git"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary   color.Color // headers, remote names
	Staged    color.Color // index changes
	Unstaged  color.Color // working tree changes
	Conflict  color.Color // unmerged entries
	Untracked color.Color
	Muted     color.Color // ignored entries, secondary text
	Error     color.Color
}

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Primary:   lipgloss.Color("62"),  // cyan/teal
		Staged:    lipgloss.Color("82"),  // green
		Unstaged:  lipgloss.Color("214"), // orange
		Conflict:  lipgloss.Color("196"), // red
		Untracked: lipgloss.Color("244"), // gray
		Muted:     lipgloss.Color("240"), // dark gray
		Error:     lipgloss.Color("196"), // red
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Primary:   lipgloss.Color("#bd93f9"),
		Staged:    lipgloss.Color("#50fa7b"),
		Unstaged:  lipgloss.Color("#ffb86c"),
		Conflict:  lipgloss.Color("#ff5555"),
		Untracked: lipgloss.Color("#8be9fd"),
		Muted:     lipgloss.Color("#6272a4"),
		Error:     lipgloss.Color("#ff5555"),
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Primary:   lipgloss.Color("#88c0d0"),
		Staged:    lipgloss.Color("#a3be8c"),
		Unstaged:  lipgloss.Color("#ebcb8b"),
		Conflict:  lipgloss.Color("#bf616a"),
		Untracked: lipgloss.Color("#81a1c1"),
		Muted:     lipgloss.Color("#4c566a"),
		Error:     lipgloss.Color("#bf616a"),
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	// Formatting (bold/italic) is preserved
	NoneTheme = Theme{
		Primary:   lipgloss.NoColor{},
		Staged:    lipgloss.NoColor{},
		Unstaged:  lipgloss.NoColor{},
		Conflict:  lipgloss.NoColor{},
		Untracked: lipgloss.NoColor{},
		Muted:     lipgloss.NoColor{},
		Error:     lipgloss.NoColor{},
	}
)

var presets = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"nord":    NordTheme,
	"none":    NoneTheme,
}

// Lookup returns the preset called name. An empty name is the default.
func Lookup(name string) (Theme, bool) {
	if name == "" {
		return DefaultTheme, true
	}
	t, ok := presets[name]
	return t, ok
}

// PresetNames returns the available preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var current = DefaultTheme

// Common styles, rebuilt by Use.
var (
	HeaderStyle    lipgloss.Style
	PrimaryStyle   lipgloss.Style
	StagedStyle    lipgloss.Style
	UnstagedStyle  lipgloss.Style
	ConflictStyle  lipgloss.Style
	UntrackedStyle lipgloss.Style
	MutedStyle     lipgloss.Style
	ErrorStyle     lipgloss.Style
)

func init() {
	Use(DefaultTheme)
}

// Current returns the active theme.
func Current() Theme {
	return current
}

// Use makes t the active theme.
func Use(t Theme) {
	current = t

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	StagedStyle = lipgloss.NewStyle().Foreground(t.Staged)
	UnstagedStyle = lipgloss.NewStyle().Foreground(t.Unstaged)
	ConflictStyle = lipgloss.NewStyle().Foreground(t.Conflict).Bold(true)
	UntrackedStyle = lipgloss.NewStyle().Foreground(t.Untracked).Italic(true)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
}

// StatusStyle picks the style for a status entry.
func StatusStyle(f *git.StatusFile) lipgloss.Style {
	switch {
	case f.Index == git.Updated || f.WorkingTree == git.Updated:
		return ConflictStyle
	case f.IsUntracked():
		return UntrackedStyle
	case f.Index == git.Ignored:
		return MutedStyle
	case f.WorkingTreeChanged():
		return UnstagedStyle
	case f.IndexChanged():
		return StagedStyle
	}
	return lipgloss.NewStyle()
}
