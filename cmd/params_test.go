package cmd

import "testing"

func TestParams(t *testing.T) {
	params := map[string]interface{}{
		"window":    "Notepad",
		"pid":       float64(42),
		"window-id": int64(0x10a2),
		"all":       true,
		"numeric":   7,
	}

	if got := StringParam(params, "window", ""); got != "Notepad" {
		t.Errorf("StringParam: got %q", got)
	}
	if got := StringParam(params, "numeric", ""); got != "7" {
		t.Errorf("StringParam numeric: got %q", got)
	}
	if got := StringParam(params, "missing", "def"); got != "def" {
		t.Errorf("StringParam default: got %q", got)
	}
	if got := IntParam(params, "pid", 0); got != 42 {
		t.Errorf("IntParam float64: got %d", got)
	}
	if got := IntParam(params, "window-id", 0); got != 0x10a2 {
		t.Errorf("IntParam int64: got %d", got)
	}
	if got := IntParam(params, "window", -1); got != -1 {
		t.Errorf("IntParam wrong type should default, got %d", got)
	}
	if !BoolParam(params, "all", false) {
		t.Error("BoolParam: expected true")
	}
	if BoolParam(params, "pid", false) {
		t.Error("BoolParam wrong type should default")
	}
}
