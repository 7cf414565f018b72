package battery

import "context"

// MonitorReader samples a host supplied Monitor
type MonitorReader struct {
	monitor Monitor
}

// NewMonitorReader creates a reader backed by m
func NewMonitorReader(m Monitor) *MonitorReader {
	return &MonitorReader{monitor: m}
}

// Level enables monitoring and samples the charge. Monitoring is left
// enabled afterwards.
func (r *MonitorReader) Level(ctx context.Context) (int, error) {
	if r.monitor == nil {
		return 0, ErrUnavailable
	}
	r.monitor.SetBatteryMonitoringEnabled(true)
	return FromFraction(r.monitor.BatteryLevel())
}

// CapacityReader samples a host supplied CapacitySource
type CapacityReader struct {
	source CapacitySource
}

// NewCapacityReader creates a reader backed by c
func NewCapacityReader(c CapacitySource) *CapacityReader {
	return &CapacityReader{source: c}
}

// Level returns the integer capacity unchanged
func (r *CapacityReader) Level(ctx context.Context) (int, error) {
	if r.source == nil {
		return 0, ErrUnavailable
	}
	return FromCapacity(r.source.BatteryCapacity())
}
