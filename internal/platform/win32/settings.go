//go:build windows

package win32

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	settingsKeyPath = `Software\Jamie\fsb\Settings`
	guiModeValue    = "gui_mode"
)

// RegistrySettings implements platform.Settings under HKEY_CURRENT_USER.
type RegistrySettings struct {
	root registry.Key
	path string
}

// NewSettings creates a settings store at HKCU\Software\Jamie\fsb\Settings.
func NewSettings() *RegistrySettings {
	return &RegistrySettings{root: registry.CURRENT_USER, path: settingsKeyPath}
}

// GUIMode reports whether gui_mode is set to a non-zero value. A missing key
// or value reads as false.
func (s *RegistrySettings) GUIMode() (bool, error) {
	k, err := registry.OpenKey(s.root, s.path, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open registry key %s: %w", s.path, err)
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(guiModeValue)
	if errors.Is(err, registry.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", guiModeValue, err)
	}
	return v != 0, nil
}

// SetGUIMode writes gui_mode as a DWORD, creating the key when needed.
func (s *RegistrySettings) SetGUIMode(enabled bool) error {
	k, _, err := registry.CreateKey(s.root, s.path, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to create registry key %s: %w", s.path, err)
	}
	defer k.Close()

	var v uint32
	if enabled {
		v = 1
	}
	if err := k.SetDWordValue(guiModeValue, v); err != nil {
		return fmt.Errorf("failed to write %s: %w", guiModeValue, err)
	}
	return nil
}
