package battery

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PowerSupplyRoot is where the kernel exposes power supplies on Linux and Android
const PowerSupplyRoot = "/sys/class/power_supply"

// SysfsReader reads the capacity attribute of a kernel power supply
type SysfsReader struct {
	root string
}

// NewSysfsReader creates a reader that looks for batteries under root
func NewSysfsReader(root string) *SysfsReader {
	return &SysfsReader{root: root}
}

// Level returns the capacity of the first battery found
func (r *SysfsReader) Level(ctx context.Context) (int, error) {
	path := r.capacityPath()
	if path == "" {
		return 0, ErrUnavailable
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, ErrUnavailable
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, ErrUnavailable
	}

	return FromCapacity(capacity)
}

// capacityPath prefers the Android "battery" supply, then any supply whose
// type is Battery (BAT0, BAT1, ...).
func (r *SysfsReader) capacityPath() string {
	preferred := filepath.Join(r.root, "battery", "capacity")
	if _, err := os.Stat(preferred); err == nil {
		return preferred
	}

	entries, err := os.ReadDir(r.root)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		dir := filepath.Join(r.root, entry.Name())
		kind, err := os.ReadFile(filepath.Join(dir, "type"))
		if err != nil || strings.TrimSpace(string(kind)) != "Battery" {
			continue
		}
		capacity := filepath.Join(dir, "capacity")
		if _, err := os.Stat(capacity); err == nil {
			return capacity
		}
	}

	return ""
}
