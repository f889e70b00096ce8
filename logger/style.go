package logger

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the console styles of one Logger.
// They are bound to the Logger's renderer, so color output follows the
// capabilities of the console writer and turns into plain text when it is
// not a terminal.
type styles struct {
	timestamp lipgloss.Style
	separator lipgloss.Style
	prefix    lipgloss.Style
	other     lipgloss.Style
	levels    map[Level]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	bold := func(color string) lipgloss.Style {
		return r.NewStyle().
			Foreground(lipgloss.Color(color)).
			Bold(true).
			TabWidth(lipgloss.NoTabConversion)
	}

	return styles{
		timestamp: r.NewStyle().Foreground(lipgloss.Color("8")).TabWidth(lipgloss.NoTabConversion),
		separator: bold("1"),
		prefix:    bold("2"),
		other:     r.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion),
		levels: map[Level]lipgloss.Style{
			InfoLevel:  bold("4"),
			ErrorLevel: bold("1"),
			WarnLevel:  bold("3"),
			InitLevel:  bold("5"),
		},
	}
}

// level returns the style for a level tag, falling back to the neutral one.
func (s styles) level(l Level) lipgloss.Style {
	if !l.Known() {
		return s.other
	}
	return s.levels[l]
}

// render builds the console form of e: the same fields and separators as
// entry.plain, without the trailing newline. The message is left unstyled.
func (s styles) render(e entry) string {
	fields := make([]string, 0, 4)
	fields = append(fields, s.timestamp.Render("["+e.timestamp+"]"))
	if e.prefix != "" {
		fields = append(fields, s.prefix.Render("["+e.prefix+"]"))
	}
	fields = append(fields, s.level(e.level).Render(string(e.level)), e.message)
	return strings.Join(fields, s.separator.Render(fieldSeparator))
}
