// Package mobile is the gomobile-bindable entry point. The native shell of
// the app creates one Bridge at startup and forwards every message received
// on the device-info channel to Handle.
package mobile

import (
	"context"

	"github.com/sigmalogic/deviceprobe/internal/battery"
	"github.com/sigmalogic/deviceprobe/internal/channel"
	"github.com/sigmalogic/deviceprobe/internal/device"
	"github.com/sigmalogic/deviceprobe/internal/probe"
)

// Host is implemented by the native shell for values Go cannot read itself.
// On iOS this wraps UIDevice.current.
type Host interface {
	SetBatteryMonitoringEnabled(enabled bool)
	// BatteryLevel returns a fraction in [0,1], or a negative value when unknown.
	BatteryLevel() float64
	// Model returns the generic device class, e.g. "iPhone".
	Model() string
	SystemVersion() string
}

// AndroidHost is implemented by the Android shell. BatteryCapacity returns
// BatteryManager.BATTERY_PROPERTY_CAPACITY unchanged, or -1 when unknown.
// Model, OS version and manufacturer come from system properties.
type AndroidHost interface {
	BatteryCapacity() int
}

// Bridge owns the request channel for the lifetime of the process
type Bridge struct {
	messenger *channel.Messenger
}

// NewBridge registers the device-info endpoint for an iOS shell. host may be nil.
func NewBridge(host Host) *Bridge {
	opts := probe.Options{}
	if host != nil {
		opts.Hints = device.Hints{Model: host.Model(), SystemVersion: host.SystemVersion()}
		opts.Monitor = battery.Monitor(host)
	}

	return newBridge(opts)
}

// NewAndroidBridge registers the device-info endpoint for an Android shell.
// host may be nil, in which case the battery is read from sysfs.
func NewAndroidBridge(host AndroidHost) *Bridge {
	opts := probe.Options{}
	if host != nil {
		opts.Capacity = battery.CapacitySource(host)
	}
	return newBridge(opts)
}

func newBridge(opts probe.Options) *Bridge {
	m := channel.NewMessenger()
	probe.NewDispatcher(probe.NewPlatform(opts)).Register(m)
	return &Bridge{messenger: m}
}

// ChannelName returns the name the host must route to Handle
func ChannelName() string {
	return probe.ChannelName
}

// Handle answers one encoded message. An empty reply means the method is
// not implemented.
func (b *Bridge) Handle(channelName string, message []byte) []byte {
	return b.messenger.Send(context.Background(), channelName, message)
}
