//go:build windows

package win32

import (
	"fmt"
	"os"
	"testing"

	"golang.org/x/sys/windows/registry"
)

func testSettings(t *testing.T) *RegistrySettings {
	t.Helper()
	path := fmt.Sprintf(`Software\fsb-test-%d\Settings`, os.Getpid())
	t.Cleanup(func() {
		_ = registry.DeleteKey(registry.CURRENT_USER, path)
		_ = registry.DeleteKey(registry.CURRENT_USER, fmt.Sprintf(`Software\fsb-test-%d`, os.Getpid()))
	})
	return &RegistrySettings{root: registry.CURRENT_USER, path: path}
}

func TestRegistrySettings_MissingKeyIsFalse(t *testing.T) {
	s := testSettings(t)
	enabled, err := s.GUIMode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enabled {
		t.Error("expected gui mode off when the key does not exist")
	}
}

func TestRegistrySettings_RoundTrip(t *testing.T) {
	s := testSettings(t)
	if err := s.SetGUIMode(true); err != nil {
		t.Fatalf("SetGUIMode(true): %v", err)
	}
	enabled, err := s.GUIMode()
	if err != nil || !enabled {
		t.Fatalf("after enabling: enabled=%v err=%v", enabled, err)
	}

	if err := s.SetGUIMode(false); err != nil {
		t.Fatalf("SetGUIMode(false): %v", err)
	}
	enabled, err = s.GUIMode()
	if err != nil || enabled {
		t.Errorf("after disabling: enabled=%v err=%v", enabled, err)
	}
}
