//go:build windows

package battery

import (
	"context"

	"github.com/StackExchange/wmi"
)

// WindowsReader implements battery monitoring for Windows
type WindowsReader struct{}

// newPlatformReader creates a new Windows battery reader
func newPlatformReader() Reader {
	return &WindowsReader{}
}

// Win32_Battery represents WMI battery data
type Win32_Battery struct {
	EstimatedChargeRemaining *uint16
}

// Level returns the estimated charge of the first battery
func (r *WindowsReader) Level(ctx context.Context) (int, error) {
	var batteries []Win32_Battery
	if err := wmi.Query("SELECT EstimatedChargeRemaining FROM Win32_Battery", &batteries); err != nil {
		return 0, ErrUnavailable
	}

	for _, b := range batteries {
		if b.EstimatedChargeRemaining == nil {
			continue
		}
		return FromCapacity(int(*b.EstimatedChargeRemaining))
	}

	return 0, ErrUnavailable
}
