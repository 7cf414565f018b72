package probe

// Method identifies a device-info request
type Method int

const (
	MethodUnknown Method = iota
	GetDeviceModel
	GetOSVersion
	GetBatteryLevel
	GetManufacturer
	GetTotalStorage
	GetAvailableStorage
)

var methodNames = [...]string{
	MethodUnknown:       "",
	GetDeviceModel:      "getDeviceModel",
	GetOSVersion:        "getOSVersion",
	GetBatteryLevel:     "getBatteryLevel",
	GetManufacturer:     "getManufacturer",
	GetTotalStorage:     "getTotalStorage",
	GetAvailableStorage: "getAvailableStorage",
}

// ParseMethod maps a wire name to its Method. Names are case-sensitive;
// anything else is MethodUnknown.
func ParseMethod(name string) Method {
	for m := GetDeviceModel; m <= GetAvailableStorage; m++ {
		if methodNames[m] == name {
			return m
		}
	}
	return MethodUnknown
}

// Methods returns every supported method in wire order
func Methods() []Method {
	return []Method{GetDeviceModel, GetOSVersion, GetBatteryLevel, GetManufacturer, GetTotalStorage, GetAvailableStorage}
}

// String returns the wire name
func (m Method) String() string {
	if m <= MethodUnknown || int(m) >= len(methodNames) {
		return "unknown"
	}
	return methodNames[m]
}
