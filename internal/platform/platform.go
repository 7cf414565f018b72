package platform

import (
	"fmt"
	"runtime"
)

// SupportedOS represents a build target the probe has a backend for
type SupportedOS string

const (
	Android SupportedOS = "android"
	IOS     SupportedOS = "ios"
	Linux   SupportedOS = "linux"
	Darwin  SupportedOS = "darwin"
	Windows SupportedOS = "windows"
)

// canonical OS names as they appear in the OS version string
var osNames = map[SupportedOS]string{
	Android: "Android",
	IOS:     "iOS",
	Linux:   "Linux",
	Darwin:  "macOS",
	Windows: "Windows",
}

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsMobile reports whether the build targets one of the mobile backends
func IsMobile() bool {
	os := GetOS()
	return os == Android || os == IOS
}

// IsSupported returns true if the current OS is supported
func IsSupported() bool {
	_, ok := osNames[GetOS()]
	return ok
}

// Name returns the canonical OS name for the current build target
func Name() string {
	return NameOf(GetOS())
}

// NameOf returns the canonical name of os, or the raw GOOS value when unknown.
func NameOf(os SupportedOS) string {
	if name, ok := osNames[os]; ok {
		return name
	}
	return string(os)
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("unsupported operating system: %s. Supported: android, ios, linux, darwin, windows", runtime.GOOS)
	}
	return nil
}
