package probe

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sigmalogic/deviceprobe/internal/battery"
	"github.com/sigmalogic/deviceprobe/internal/channel"
)

// Battery error frame
const (
	CodeUnavailable    = "UNAVAILABLE"
	MessageUnavailable = "Battery level not available"
)

// CodeError is used for battery failures other than unavailability
const CodeError = "ERROR"

// Dispatcher answers method calls with a Probe
type Dispatcher struct {
	probe Probe
}

// NewDispatcher creates a dispatcher for p
func NewDispatcher(p Probe) *Dispatcher {
	return &Dispatcher{probe: p}
}

// Register installs the dispatcher on the device-info endpoint of m
func (d *Dispatcher) Register(m *channel.Messenger) *channel.MethodChannel {
	c := channel.NewMethodChannel(m, ChannelName, nil)
	c.SetMethodCallHandler(d.Handle)
	return c
}

// Handle answers a single call. Arguments are ignored.
func (d *Dispatcher) Handle(ctx context.Context, call *channel.MethodCall, result channel.Result) {
	method := ParseMethod(call.Method)
	log.Trace().Str("method", call.Method).Msg("device info request")

	switch method {
	case GetDeviceModel:
		result.Success(d.probe.Model(ctx))
	case GetOSVersion:
		result.Success(d.probe.OSVersion(ctx))
	case GetManufacturer:
		result.Success(d.probe.Manufacturer(ctx))
	case GetBatteryLevel:
		d.batteryLevel(ctx, result)
	case GetTotalStorage:
		result.Success(d.probe.TotalStorage(ctx))
	case GetAvailableStorage:
		result.Success(d.probe.AvailableStorage(ctx))
	default:
		result.NotImplemented()
	}
}

func (d *Dispatcher) batteryLevel(ctx context.Context, result channel.Result) {
	level, err := d.probe.BatteryLevel(ctx)
	switch {
	case errors.Is(err, battery.ErrUnavailable):
		result.Error(CodeUnavailable, MessageUnavailable, nil)
	case err != nil:
		result.Error(CodeError, err.Error(), nil)
	case level < 0 || level > 100:
		result.Error(CodeUnavailable, MessageUnavailable, nil)
	default:
		result.Success(level)
	}
}
