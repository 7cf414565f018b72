//go:build windows

package device

import (
	"context"

	"github.com/StackExchange/wmi"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/sigmalogic/deviceprobe/internal/platform"
)

// WindowsReader implements device identity for Windows
type WindowsReader struct {
	hints Hints
}

// newPlatformReader creates a new Windows device reader
func newPlatformReader(hints Hints) Reader {
	return &WindowsReader{hints: hints}
}

// Win32_ComputerSystem represents WMI computer system data
type Win32_ComputerSystem struct {
	Manufacturer string
	Model        string
}

func (r *WindowsReader) computerSystem() Win32_ComputerSystem {
	var systems []Win32_ComputerSystem
	if err := wmi.Query("SELECT Manufacturer, Model FROM Win32_ComputerSystem", &systems); err != nil || len(systems) == 0 {
		return Win32_ComputerSystem{}
	}
	return systems[0]
}

// Model returns the computer system model
func (r *WindowsReader) Model(ctx context.Context) string {
	return firstNonEmpty(r.computerSystem().Model, r.hints.Model, "PC")
}

// OSVersion returns "Windows <version>"
func (r *WindowsReader) OSVersion(ctx context.Context) string {
	release := r.hints.SystemVersion
	if info, err := host.InfoWithContext(ctx); err == nil {
		release = firstNonEmpty(info.PlatformVersion, release)
	}
	return FormatOSVersion(platform.Name(), release)
}

// Manufacturer returns the computer system manufacturer
func (r *WindowsReader) Manufacturer(ctx context.Context) string {
	return firstNonEmpty(r.computerSystem().Manufacturer, Unknown)
}
