// Package platform detects the host OS and architecture used to derive
// default payload names and to resolve platform-dependent artifact URLs.
//
// Detection combines runtime.GOOS/GOARCH with gopsutil for Linux
// distribution details, falling back gracefully when distro detection
// fails. The detected information can be injected into a Lua state as a
// read-only table for URL expression evaluation.
package platform

import "context"

// Info contains platform detection information.
type Info struct {
	OS            string // "linux", "darwin", "windows"
	Arch          string // normalized, e.g. "amd64", "arm64"
	ArchRaw       string // original GOARCH value
	Distro        string // Linux distro ID (e.g. "ubuntu"); empty elsewhere
	DistroVersion string // Linux distro version (e.g. "22.04"); empty elsewhere
}

// String returns the conventional "<os>/<arch>" form.
func (i *Info) String() string {
	return i.OS + "/" + i.Arch
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// IsAMD64 returns true if the architecture is amd64.
func (i *Info) IsAMD64() bool {
	return i.Arch == "amd64"
}

// IsARM64 returns true if the architecture is arm64.
func (i *Info) IsARM64() bool {
	return i.Arch == "arm64"
}

// ExeSuffix returns the executable filename suffix for the platform:
// ".exe" on Windows, empty elsewhere.
func (i *Info) ExeSuffix() string {
	if i.IsWindows() {
		return ".exe"
	}
	return ""
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
