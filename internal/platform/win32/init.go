//go:build windows

package win32

import (
	"log/slog"

	"github.com/jhowell728/fsb/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		logger := slog.Default()
		return &platform.Provider{
			Reader:        NewReader(logger),
			WindowManager: NewWindowManager(logger),
			Console:       NewConsole(logger),
			Settings:      NewSettings(),
		}, nil
	}
}
