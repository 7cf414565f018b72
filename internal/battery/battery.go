// Package battery samples the current battery charge.
package battery

import (
	"context"

	"github.com/pkg/errors"
)

// ErrUnavailable is returned when the platform cannot supply a reading.
var ErrUnavailable = errors.New("battery level not available")

// Reader interface for battery monitoring
type Reader interface {
	// Level returns the charge as a percentage in [0,100].
	Level(ctx context.Context) (int, error)
}

// Monitor is a battery source owned by the host application, such as
// UIDevice on iOS. BatteryLevel reports a fraction in [0,1], or a negative
// value when unknown.
type Monitor interface {
	SetBatteryMonitoringEnabled(enabled bool)
	BatteryLevel() float64
}

// CapacitySource is a host owned source of the integer percentage the OS
// reports directly, such as BatteryManager.BATTERY_PROPERTY_CAPACITY on
// Android. Negative values mean unknown.
type CapacitySource interface {
	BatteryCapacity() int
}

// NewReader creates a battery reader for the current platform. Host sources
// take precedence over the platform reader, an integer capacity source
// before a fraction monitor.
func NewReader(c CapacitySource, m Monitor) Reader {
	switch {
	case c != nil:
		return NewCapacityReader(c)
	case m != nil:
		return NewMonitorReader(m)
	}
	return newPlatformReader()
}

// FromFraction scales a [0,1] fraction to a percentage, truncating. Negative
// fractions are the platform's "unknown" sentinel.
func FromFraction(fraction float64) (int, error) {
	if fraction < 0 {
		return 0, ErrUnavailable
	}
	if fraction > 1 {
		fraction = 1
	}
	return int(fraction * 100), nil
}

// FromCapacity validates an integer percentage reported directly by the OS.
func FromCapacity(capacity int) (int, error) {
	if capacity < 0 || capacity > 100 {
		return 0, ErrUnavailable
	}
	return capacity, nil
}
