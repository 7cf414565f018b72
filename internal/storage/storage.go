// Package storage reports the size of the primary user-data volume.
package storage

import (
	"context"
	"fmt"

	units "github.com/docker/go-units"
)

// Unknown replaces a formatted size when the volume cannot be queried.
const Unknown = "Unknown"

// Info represents the capacity of the user-data volume in bytes
type Info struct {
	Path      string `json:"path"`
	Total     uint64 `json:"total_bytes"`
	Available uint64 `json:"available_bytes"`
}

// Reader interface for storage monitoring
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// NewReader creates a new storage reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}

// Format renders bytes as gibibytes with two decimals. The unit label stays
// "GB" because the host UI already parses that shape.
func Format(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/float64(units.GiB))
}

// TotalString returns the formatted total capacity, or Unknown.
func TotalString(ctx context.Context, r Reader) string {
	info, err := r.GetInfo(ctx)
	if err != nil || info == nil {
		return Unknown
	}
	return Format(info.Total)
}

// AvailableString returns the formatted free capacity, or Unknown.
func AvailableString(ctx context.Context, r Reader) string {
	info, err := r.GetInfo(ctx)
	if err != nil || info == nil {
		return Unknown
	}
	return Format(info.Available)
}
