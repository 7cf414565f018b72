//go:build ios

package battery

import "context"

// UnavailableReader is used on iOS when the host registered no Monitor.
// UIDevice is only reachable from the native side.
type UnavailableReader struct{}

// newPlatformReader creates the iOS fallback reader
func newPlatformReader() Reader {
	return &UnavailableReader{}
}

// Level always reports the battery as unavailable
func (r *UnavailableReader) Level(ctx context.Context) (int, error) {
	return 0, ErrUnavailable
}
