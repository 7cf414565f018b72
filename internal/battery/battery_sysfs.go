//go:build !ios && !windows

package battery

// newPlatformReader creates a sysfs battery reader. Android maps
// BATTERY_PROPERTY_CAPACITY to the same attribute.
func newPlatformReader() Reader {
	return NewSysfsReader(PowerSupplyRoot)
}
