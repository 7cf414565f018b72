package probe

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sigmalogic/deviceprobe/internal/channel"
)

// Snapshot holds one answer for every method
type Snapshot struct {
	Model            string `json:"model"`
	OSVersion        string `json:"os_version"`
	Manufacturer     string `json:"manufacturer"`
	BatteryLevel     *int   `json:"battery_level"`
	TotalStorage     string `json:"total_storage"`
	AvailableStorage string `json:"available_storage"`
}

// Collect calls every method through c. An unavailable battery leaves
// BatteryLevel nil.
func Collect(ctx context.Context, c *channel.MethodChannel) (*Snapshot, error) {
	s := &Snapshot{}

	strs := []struct {
		method Method
		dst    *string
	}{
		{GetDeviceModel, &s.Model},
		{GetOSVersion, &s.OSVersion},
		{GetManufacturer, &s.Manufacturer},
		{GetTotalStorage, &s.TotalStorage},
		{GetAvailableStorage, &s.AvailableStorage},
	}
	for _, f := range strs {
		raw, err := c.InvokeMethod(ctx, f.method.String(), nil)
		if err != nil {
			return nil, errors.Wrap(err, f.method.String())
		}
		if err := jsoniter.Unmarshal(raw, f.dst); err != nil {
			return nil, errors.Wrapf(err, "decode %s", f.method)
		}
	}

	raw, err := c.InvokeMethod(ctx, GetBatteryLevel.String(), nil)
	var replyErr *channel.Error
	switch {
	case errors.As(err, &replyErr) && replyErr.Code == CodeUnavailable:
	case err != nil:
		return nil, errors.Wrap(err, GetBatteryLevel.String())
	default:
		var level int
		if err := jsoniter.Unmarshal(raw, &level); err != nil {
			return nil, errors.Wrapf(err, "decode %s", GetBatteryLevel)
		}
		s.BatteryLevel = &level
	}

	return s, nil
}
