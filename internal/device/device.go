// Package device identifies the hardware and operating system the probe runs on.
package device

import (
	"bytes"
	"context"
	"strings"
)

// Apple is the only manufacturer of iOS devices
const Apple = "Apple"

// Unknown is reported when the manufacturer cannot be read
const Unknown = "Unknown"

// Hints carries values only the host application can read, such as
// UIDevice.model and UIDevice.systemVersion on iOS. Zero values are ignored.
type Hints struct {
	Model         string
	SystemVersion string
}

// Reader interface for device identity. None of the methods fail; each
// falls back to the best value available.
type Reader interface {
	Model(ctx context.Context) string
	OSVersion(ctx context.Context) string
	Manufacturer(ctx context.Context) string
}

// NewReader creates a device reader for the current platform
func NewReader(hints Hints) Reader {
	return newPlatformReader(hints)
}

// FormatOSVersion joins the canonical OS name and the release with one space.
func FormatOSVersion(osName, release string) string {
	return osName + " " + strings.TrimSpace(release)
}

// cString converts a NUL-terminated buffer such as utsname.machine.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
