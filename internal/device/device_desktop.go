//go:build !android && !ios && !windows

package device

import (
	"context"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/sigmalogic/deviceprobe/internal/platform"
)

// dmiRoot exposes firmware identity on Linux
const dmiRoot = "/sys/devices/virtual/dmi/id"

// DesktopReader implements device identity for development hosts
type DesktopReader struct {
	hints   Hints
	dmiRoot string
}

// newPlatformReader creates a new desktop device reader
func newPlatformReader(hints Hints) Reader {
	return &DesktopReader{hints: hints, dmiRoot: dmiRoot}
}

func (r *DesktopReader) dmi(name string) string {
	data, err := os.ReadFile(filepath.Join(r.dmiRoot, name))
	if err != nil {
		return ""
	}
	return cString(data)
}

// Model returns the DMI product name, falling back to the host architecture
func (r *DesktopReader) Model(ctx context.Context) string {
	arch := ""
	if info, err := host.InfoWithContext(ctx); err == nil {
		arch = info.KernelArch
	}
	return firstNonEmpty(r.dmi("product_name"), r.hints.Model, arch, string(platform.GetOS()))
}

// OSVersion returns "<OsName> <platform version>"
func (r *DesktopReader) OSVersion(ctx context.Context) string {
	release := r.hints.SystemVersion
	if info, err := host.InfoWithContext(ctx); err == nil {
		release = firstNonEmpty(info.PlatformVersion, info.KernelVersion, release)
	}
	return FormatOSVersion(platform.Name(), release)
}

// Manufacturer returns the DMI system vendor
func (r *DesktopReader) Manufacturer(ctx context.Context) string {
	if platform.GetOS() == platform.Darwin {
		return Apple
	}
	return firstNonEmpty(r.dmi("sys_vendor"), Unknown)
}
