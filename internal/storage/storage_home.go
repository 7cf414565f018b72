//go:build !android

package storage

import "os"

// newPlatformReader creates a reader for the volume holding the user's home
// directory. On iOS that is the app sandbox.
func newPlatformReader() Reader {
	return &VolumeReader{dir: os.UserHomeDir}
}
