package device

import (
	"context"
	"os/exec"
	"strings"

	"github.com/sigmalogic/deviceprobe/internal/platform"
)

// Android system properties backing android.os.Build
const (
	PropModel        = "ro.product.model"
	PropDevice       = "ro.product.device"
	PropManufacturer = "ro.product.manufacturer"
	PropRelease      = "ro.build.version.release"
)

// PropertyFunc returns the value of an Android system property
type PropertyFunc func(ctx context.Context, key string) (string, error)

// GetProp reads a system property with the getprop tool
func GetProp(ctx context.Context, key string) (string, error) {
	output, err := exec.CommandContext(ctx, "getprop", key).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// PropertyReader implements device identity from Android system properties
type PropertyReader struct {
	getprop PropertyFunc
}

// NewPropertyReader creates a reader that resolves properties with get
func NewPropertyReader(get PropertyFunc) *PropertyReader {
	return &PropertyReader{getprop: get}
}

func (r *PropertyReader) prop(ctx context.Context, key string) string {
	v, err := r.getprop(ctx, key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

// Model returns Build.MODEL
func (r *PropertyReader) Model(ctx context.Context) string {
	return firstNonEmpty(r.prop(ctx, PropModel), r.prop(ctx, PropDevice), platform.NameOf(platform.Android))
}

// OSVersion returns "Android <release>"
func (r *PropertyReader) OSVersion(ctx context.Context) string {
	return FormatOSVersion(platform.NameOf(platform.Android), r.prop(ctx, PropRelease))
}

// Manufacturer returns Build.MANUFACTURER
func (r *PropertyReader) Manufacturer(ctx context.Context) string {
	return firstNonEmpty(r.prop(ctx, PropManufacturer), Unknown)
}
