//go:build android

package device

// newPlatformReader creates a new Android device reader
func newPlatformReader(hints Hints) Reader {
	return NewPropertyReader(GetProp)
}
