package runner

import (
	"path/filepath"
	"strings"
)

// execMode says how a payload has to be launched.
type execMode int

const (
	// modeDirect executes the payload itself.
	modeDirect execMode = iota
	// modeShell executes the payload through a shell interpreter. Required
	// for script-style payloads that the OS loader cannot exec directly.
	modeShell
)

// scriptModes is the capability table mapping payload file extensions onto
// the execution mode they require. Built once; launch decisions are a
// single lookup instead of scattered platform conditionals.
var scriptModes = map[string]execMode{
	".sh":   modeShell,
	".bash": modeShell,
	".bat":  modeShell,
	".cmd":  modeShell,
	".ps1":  modeShell,
}

// modeFor returns the execution mode for a payload path.
func modeFor(path string) execMode {
	ext := strings.ToLower(filepath.Ext(path))
	if mode, ok := scriptModes[ext]; ok {
		return mode
	}
	return modeDirect
}
