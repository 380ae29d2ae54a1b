package menu

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/jhowell728/fsb/internal/model"
)

func plainRenderer() *Renderer {
	// A bytes.Buffer is not a terminal, so lipgloss renders without color.
	return NewRenderer(&bytes.Buffer{})
}

func TestLines_FooterAnchoredToBottom(t *testing.T) {
	for _, height := range []int{6, 10, 24, 50} {
		lines := plainRenderer().Lines(New(threeWindows()), 40, height)
		if len(lines) != height {
			t.Fatalf("height %d: got %d lines", height, len(lines))
		}
		if lines[height-2] != strings.Repeat("=", 40) {
			t.Errorf("height %d: divider not on second-to-last line: %q", height, lines[height-2])
		}
		if !strings.HasPrefix(lines[height-1], "[Q] Quit [R] Reset [") {
			t.Errorf("height %d: hints not on last line: %q", height, lines[height-1])
		}
	}
}

func TestLines_ListRows(t *testing.T) {
	m := New(threeWindows())
	lines := plainRenderer().Lines(m, 60, 12)
	if lines[0] != headerText {
		t.Errorf("header: got %q", lines[0])
	}
	want := []string{"   A (Process Id: 11)", "   B (Process Id: 22)", "   C (Process Id: 33)"}
	for i, w := range want {
		if lines[headerLines+i] != w {
			t.Errorf("row %d: got %q, want %q", i, lines[headerLines+i], w)
		}
	}
	// Remaining body lines are blank padding.
	for i := headerLines + len(want); i < len(lines)-footerLines; i++ {
		if lines[i] != "" {
			t.Errorf("line %d should be padding, got %q", i, lines[i])
		}
	}
}

func TestLines_StatusAboveFooter(t *testing.T) {
	m := New(threeWindows())
	m.SetStatus("Refresh failed: boom")
	lines := plainRenderer().Lines(m, 60, 12)
	if len(lines) != 12 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[9] != "Refresh failed: boom" {
		t.Errorf("status line: got %q", lines[9])
	}
}

func TestLines_ScrollsToSelection(t *testing.T) {
	windows := make([]model.Window, 30)
	for i := range windows {
		windows[i] = model.Window{ID: uintptr(i + 1), PID: i, Title: fmt.Sprintf("w%02d", i)}
	}
	m := New(windows)
	m.Move(-1) // wrap to the last row

	lines := plainRenderer().Lines(m, 40, 10)
	body := lines[headerLines : len(lines)-footerLines]
	if len(body) != 6 {
		t.Fatalf("body height: got %d", len(body))
	}
	if !strings.Contains(body[len(body)-1], "w29") {
		t.Errorf("selected last row should be visible at the bottom, body=%q", body)
	}
}

func TestLines_EmptyList(t *testing.T) {
	lines := plainRenderer().Lines(New(nil), 60, 8)
	if len(lines) != 8 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[headerLines], "no windows") {
		t.Errorf("expected placeholder, got %q", lines[headerLines])
	}
}

func TestLines_TruncatesLongTitles(t *testing.T) {
	m := New([]model.Window{{ID: 1, PID: 1, Title: strings.Repeat("x", 200)}})
	lines := plainRenderer().Lines(m, 30, 8)
	row := lines[headerLines]
	if len([]rune(row)) > 30 {
		t.Errorf("row wider than console: %d", len([]rune(row)))
	}
	if !strings.HasSuffix(row, "…") {
		t.Errorf("expected ellipsis, got %q", row)
	}
}

func TestFrame_ClearsAndHomes(t *testing.T) {
	frame := plainRenderer().Frame(New(threeWindows()), 40, 8)
	if !strings.HasPrefix(frame, escHideCursor+escReset+escClear+escHome) {
		t.Errorf("frame should start with clear/home, got %q", frame[:20])
	}
	if strings.Count(frame, "\r\n") != 7 {
		t.Errorf("expected 7 line breaks, got %d", strings.Count(frame, "\r\n"))
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct{ selected, height, want int }{
		{0, 5, 0},
		{4, 5, 0},
		{5, 5, 1},
		{29, 6, 24},
	}
	for _, tt := range tests {
		if got := scrollOffset(tt.selected, tt.height); got != tt.want {
			t.Errorf("scrollOffset(%d, %d) = %d, want %d", tt.selected, tt.height, got, tt.want)
		}
	}
}
