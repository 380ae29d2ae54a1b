package menu

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI escape codes
const (
	escClear      = "\x1b[2J"
	escHome       = "\x1b[H"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
	escReset      = "\x1b[0m"
)

const (
	headerText  = "Select a process to fullscreen:"
	headerLines = 2 // title + blank
	footerLines = 2 // divider + key hints
	rowIndent   = "   "
)

// Renderer paints a Menu as a full screen of text.
type Renderer struct {
	header   lipgloss.Style
	row      lipgloss.Style
	selected lipgloss.Style
	status   lipgloss.Style
	hotkey   lipgloss.Style
	empty    lipgloss.Style
}

// NewRenderer builds styles for the color profile of w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		header:   r.NewStyle().Bold(true),
		row:      r.NewStyle(),
		selected: r.NewStyle().Foreground(lipgloss.Color("8")).Background(lipgloss.Color("15")),
		status:   r.NewStyle().Foreground(lipgloss.Color("9")),
		hotkey:   r.NewStyle().Foreground(lipgloss.Color("12")),
		empty:    r.NewStyle().Faint(true),
	}
}

// Lines renders m into exactly height lines no wider than width. The key
// hints footer always occupies the last two lines.
func (r *Renderer) Lines(m *Menu, width, height int) []string {
	if width < 1 {
		width = 1
	}
	statusLines := 0
	if m.Status() != "" {
		statusLines = 1
	}
	bodyHeight := height - headerLines - footerLines - statusLines
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	lines := make([]string, 0, headerLines+bodyHeight+statusLines+footerLines)
	lines = append(lines, r.header.MaxWidth(width).Render(headerText), "")

	windows := m.Windows()
	if len(windows) == 0 {
		lines = append(lines, r.empty.MaxWidth(width).Render(rowIndent+"(no windows, press R to refresh)"))
	}

	offset := scrollOffset(m.Selected(), bodyHeight)
	for i := offset; i < len(windows) && i < offset+bodyHeight; i++ {
		style := r.row
		if i == m.Selected() {
			style = r.selected
		}
		label := truncate(windows[i].Label(), width-len(rowIndent))
		lines = append(lines, rowIndent+style.Render(label))
	}

	// Pad so the footer stays anchored to the bottom of the console.
	for len(lines) < headerLines+bodyHeight {
		lines = append(lines, "")
	}

	if statusLines > 0 {
		lines = append(lines, r.status.MaxWidth(width).Render(m.Status()))
	}
	lines = append(lines, strings.Repeat("=", width), r.hints(width))
	return lines
}

// Frame renders a complete redraw: reset, clear, home, then the lines.
func (r *Renderer) Frame(m *Menu, width, height int) string {
	var sb strings.Builder
	sb.WriteString(escHideCursor)
	sb.WriteString(escReset)
	sb.WriteString(escClear)
	sb.WriteString(escHome)
	sb.WriteString(strings.Join(r.Lines(m, width, height), "\r\n"))
	return sb.String()
}

func (r *Renderer) hints(width int) string {
	hint := func(key, label string) string {
		return "[" + r.hotkey.Render(key) + "] " + label
	}
	line := strings.Join([]string{
		hint("Q", "Quit"),
		hint("R", "Reset"),
		hint("↵", "Apply"),
	}, " ")
	return r.row.MaxWidth(width).Render(line)
}

// scrollOffset returns the first visible row so that selected is on screen.
func scrollOffset(selected, bodyHeight int) int {
	if selected < bodyHeight {
		return 0
	}
	return selected - bodyHeight + 1
}

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
