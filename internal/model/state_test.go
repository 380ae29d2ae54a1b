package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStateFromShowCmd(t *testing.T) {
	tests := []struct {
		cmd  uint32
		want WindowState
	}{
		{1, StateNormal}, // SW_SHOWNORMAL
		{9, StateNormal}, // SW_RESTORE
		{SW_SHOWMAXIMIZED, StateMaximized},
		{SW_SHOWMINIMIZED, StateMinimized},
		{SW_SHOWMINNOACTIVE, StateMinimized},
		{0, StateNormal},
	}
	for _, tt := range tests {
		if got := StateFromShowCmd(tt.cmd); got != tt.want {
			t.Errorf("StateFromShowCmd(%d) = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestParseWindowState_Unknown(t *testing.T) {
	if _, err := ParseWindowState("fullscreen"); err == nil {
		t.Error("expected error for unknown state")
	}
}

func TestWindow_EncodesStateAsText(t *testing.T) {
	w := Window{ID: 7, Title: "x", State: StateMaximized}

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m["state"] != "maximized" {
		t.Errorf("json state: got %v", m["state"])
	}

	out, err := yaml.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Window
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("yaml round trip: %v\n%s", err, out)
	}
	if decoded.State != StateMaximized {
		t.Errorf("yaml state: got %v", decoded.State)
	}
}
