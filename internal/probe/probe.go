// Package probe answers device-info requests from the host UI.
package probe

import (
	"context"

	"github.com/sigmalogic/deviceprobe/internal/battery"
	"github.com/sigmalogic/deviceprobe/internal/device"
	"github.com/sigmalogic/deviceprobe/internal/storage"
)

// ChannelName is the endpoint the host UI calls
const ChannelName = "com.sigmalogic.sigmanotes/device_info"

// Probe is the set of device queries behind the endpoint
type Probe interface {
	Model(ctx context.Context) string
	OSVersion(ctx context.Context) string
	Manufacturer(ctx context.Context) string
	// BatteryLevel returns a percentage in [0,100] or battery.ErrUnavailable.
	BatteryLevel(ctx context.Context) (int, error)
	// TotalStorage and AvailableStorage return "%.2f GB" or storage.Unknown.
	TotalStorage(ctx context.Context) string
	AvailableStorage(ctx context.Context) string
}

// Options carries host supplied sources used by NewPlatform
type Options struct {
	Hints    device.Hints
	Capacity battery.CapacitySource
	Monitor  battery.Monitor
}

// Platform implements Probe with the readers of the current build target
type Platform struct {
	device  device.Reader
	battery battery.Reader
	storage storage.Reader
}

// NewPlatform creates the probe for the current build target
func NewPlatform(opts Options) *Platform {
	return NewPlatformFrom(device.NewReader(opts.Hints), battery.NewReader(opts.Capacity, opts.Monitor), storage.NewReader())
}

// NewPlatformFrom creates a probe from explicit readers
func NewPlatformFrom(d device.Reader, b battery.Reader, s storage.Reader) *Platform {
	return &Platform{device: d, battery: b, storage: s}
}

func (p *Platform) Model(ctx context.Context) string {
	return p.device.Model(ctx)
}

func (p *Platform) OSVersion(ctx context.Context) string {
	return p.device.OSVersion(ctx)
}

func (p *Platform) Manufacturer(ctx context.Context) string {
	return p.device.Manufacturer(ctx)
}

func (p *Platform) BatteryLevel(ctx context.Context) (int, error) {
	return p.battery.Level(ctx)
}

func (p *Platform) TotalStorage(ctx context.Context) string {
	return storage.TotalString(ctx, p.storage)
}

func (p *Platform) AvailableStorage(ctx context.Context) string {
	return storage.AvailableString(ctx, p.storage)
}
