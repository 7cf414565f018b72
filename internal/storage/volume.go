package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/disk"
)

// VolumeReader reads usage of the filesystem holding a directory
type VolumeReader struct {
	dir func() (string, error)
}

// NewVolumeReader creates a reader for the volume that contains path
func NewVolumeReader(path string) *VolumeReader {
	return &VolumeReader{dir: func() (string, error) { return path, nil }}
}

// GetInfo returns the capacity of the volume
func (r *VolumeReader) GetInfo(ctx context.Context) (*Info, error) {
	path, err := r.dir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve data directory")
	}

	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	return &Info{
		Path:      path,
		Total:     usage.Total,
		Available: usage.Free, // blocks available to unprivileged callers
	}, nil
}
