package platform

import "strings"

// archAliases maps vendor spellings of architectures onto GOARCH names so
// that user-supplied --arch overrides and detected values agree.
var archAliases = map[string]string{
	"x86_64":  "amd64",
	"x64":     "amd64",
	"amd64":   "amd64",
	"aarch64": "arm64",
	"arm64":   "arm64",
	"i386":    "386",
	"i686":    "386",
	"386":     "386",
	"armv7l":  "arm",
	"armv7":   "arm",
	"arm":     "arm",
}

// NormalizeArch maps an architecture spelling onto its canonical GOARCH
// name. Unknown values pass through unchanged; dlx does not restrict which
// architectures a cached artifact may target.
func NormalizeArch(arch string) string {
	normalized := strings.ToLower(strings.TrimSpace(arch))
	if canonical, ok := archAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// normalize lowercases and trims free-form platform strings from gopsutil.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
