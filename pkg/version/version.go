// Package version exposes the carbonpath build version.
package version

// Version is the carbonpath version, overridden at build time via
// -ldflags "-X github.com/enejokabir/carbonpath/pkg/version.Version=v1.2.3".
var Version = "dev" //nolint:gochecknoglobals // Set by the linker at build time

// GetVersion returns the current carbonpath version string.
func GetVersion() string {
	return Version
}
