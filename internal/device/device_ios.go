//go:build ios

package device

import (
	"context"

	"github.com/sigmalogic/deviceprobe/internal/platform"
	"golang.org/x/sys/unix"
)

// genericModel is what UIDevice.model reports when nothing better is known
const genericModel = "iPhone"

// IOSReader implements device identity for iOS
type IOSReader struct {
	hints Hints
}

// newPlatformReader creates a new iOS device reader
func newPlatformReader(hints Hints) Reader {
	return &IOSReader{hints: hints}
}

// Model returns the machine identifier, e.g. "iPhone15,3"
func (r *IOSReader) Model(ctx context.Context) string {
	var uts unix.Utsname
	machine := ""
	if err := unix.Uname(&uts); err == nil {
		machine = cString(uts.Machine[:])
	}
	return firstNonEmpty(machine, r.hints.Model, genericModel)
}

// OSVersion returns "iOS <systemVersion>"
func (r *IOSReader) OSVersion(ctx context.Context) string {
	release, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		release = ""
	}
	return FormatOSVersion(platform.NameOf(platform.IOS), firstNonEmpty(release, r.hints.SystemVersion))
}

// Manufacturer always returns Apple
func (r *IOSReader) Manufacturer(ctx context.Context) string {
	return Apple
}
