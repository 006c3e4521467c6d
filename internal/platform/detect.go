package platform

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect returns platform information for the current host.
//
// OS and architecture come from runtime.GOOS and runtime.GOARCH. On Linux,
// gopsutil supplies distribution details; if that fails the distro fields
// stay empty and detection still succeeds, since cache naming only needs
// OS and arch.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:      runtime.GOOS,
		Arch:    NormalizeArch(runtime.GOARCH),
		ArchRaw: runtime.GOARCH,
	}

	if runtime.GOOS == "linux" {
		distro, _, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Graceful fallback: OS/arch alone is enough for cache naming.
			return info, nil
		}

		info.Distro = normalize(distro)
		info.DistroVersion = normalize(version)
	}

	return info, nil
}
