package runner

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Launch starts the payload as a subprocess with the given arguments and
// returns the started command without waiting for it to exit. Waiting, if
// wanted, is the caller's business.
func Launch(binaryPath string, args []string, opts SpawnOptions) (*exec.Cmd, error) {
	var cmd *exec.Cmd

	switch modeFor(binaryPath) {
	case modeShell:
		cmd = shellCommand(binaryPath, args)
	default:
		cmd = exec.Command(binaryPath, args...)
	}

	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", binaryPath, err)
	}

	return cmd, nil
}

// shellCommand builds the interpreter invocation for script-style payloads.
func shellCommand(binaryPath string, args []string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		if strings.EqualFold(filepath.Ext(binaryPath), ".ps1") {
			psArgs := append([]string{"-NoProfile", "-File", binaryPath}, args...)
			return exec.Command("powershell", psArgs...)
		}
		cmdArgs := append([]string{"/c", binaryPath}, args...)
		return exec.Command("cmd", cmdArgs...)
	}

	shArgs := append([]string{binaryPath}, args...)
	return exec.Command("sh", shArgs...)
}
