//go:build android

package storage

// dataDirectory is the Android user-data partition
const dataDirectory = "/data"

// newPlatformReader creates a reader for the Android data partition
func newPlatformReader() Reader {
	return NewVolumeReader(dataDirectory)
}
