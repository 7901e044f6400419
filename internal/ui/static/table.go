// Package static provides non-interactive terminal output components.
//
// Renderers always emit styled text; pass color=false to get the same
// layout with ANSI sequences stripped.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
// cellStyle may be nil; it picks the style of a body cell.
func RenderTable(headers []string, rows [][]string, cellStyle func(row, col int) lipgloss.Style) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle.PaddingRight(2)
			}
			if cellStyle != nil {
				return cellStyle(row, col).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	var output strings.Builder
	output.WriteString(t.String())
	output.WriteString("\n")
	return output.String()
}

// StatusRows returns one row per entry: XY code, path, original path.
func StatusRows(s *git.Status) [][]string {
	files := s.Files()
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{f.Codes(), f.Path, f.OrigPath})
	}
	return rows
}

// RenderStatus renders a status listing, colored by kind of change.
func RenderStatus(s *git.Status, color bool) string {
	files := s.Files()
	out := RenderTable([]string{"XY", "PATH", "FROM"}, StatusRows(s), func(row, _ int) lipgloss.Style {
		return styles.StatusStyle(files[row])
	})
	return ForTerminal(out, color)
}

// RemoteRows returns one row per remote: name, fetch URL, push URL.
func RemoteRows(rs *git.RemoteRefs) [][]string {
	refs := rs.All()
	rows := make([][]string, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, []string{ref.Name, ref.Fetch, ref.Push})
	}
	return rows
}

// RenderRemotes renders the remotes table.
func RenderRemotes(rs *git.RemoteRefs, color bool) string {
	out := RenderTable([]string{"NAME", "FETCH", "PUSH"}, RemoteRows(rs), func(_, col int) lipgloss.Style {
		if col == 0 {
			return styles.PrimaryStyle
		}
		return lipgloss.NewStyle()
	})
	return ForTerminal(out, color)
}

// RenderURL renders the components of a repository URL as key/value lines.
func RenderURL(u *git.URL, color bool) string {
	rows := [][]string{
		{"protocol", u.Protocol},
		{"user", u.User},
		{"host", u.Host},
		{"path", u.Path},
		{"dirname", u.PathDirname()},
		{"basename", u.PathBasename()},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(styles.MutedStyle.Width(10).Render(r[0]))
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	return ForTerminal(b.String(), color)
}

// ForTerminal returns s unchanged when color is set and with ANSI sequences
// stripped otherwise.
func ForTerminal(s string, color bool) string {
	if color {
		return s
	}
	return ansi.Strip(s)
}
