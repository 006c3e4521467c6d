// Package urltpl resolves platform-dependent artifact URLs.
//
// Two mechanisms are supported: plain placeholder expansion ({os}, {arch},
// {exe}) for the common case, and Lua expressions evaluated against the
// read-only platform table for release layouts that need real branching.
package urltpl

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dlxrun/dlx/internal/platform"
)

// Expand substitutes platform placeholders in a URL template:
//
//	{os}   -> detected or overridden OS ("linux", "darwin", "windows")
//	{arch} -> normalized architecture ("amd64", "arm64", ...)
//	{exe}  -> ".exe" on Windows, empty elsewhere
//
// Unknown placeholders are left untouched.
func Expand(template string, info *platform.Info) string {
	replacer := strings.NewReplacer(
		"{os}", info.OS,
		"{arch}", info.Arch,
		"{exe}", info.ExeSuffix(),
	)
	return replacer.Replace(template)
}

// Evaluate runs a Lua expression with the platform table in scope and
// returns its string result. The expression must evaluate to a non-empty
// string, e.g.:
//
//	platform.when(platform.is_linux, "https://example.com/tool-linux")
//	    or "https://example.com/tool"
func Evaluate(expr string, info *platform.Info) (string, error) {
	L := lua.NewState()
	defer L.Close()

	platform.InjectPlatformTable(L, info)

	if err := L.DoString("return (" + expr + ")"); err != nil {
		return "", fmt.Errorf("evaluate url expression: %w", err)
	}

	value := L.Get(-1)
	L.Pop(1)

	str, ok := value.(lua.LString)
	if !ok || string(str) == "" {
		return "", fmt.Errorf("url expression must return a non-empty string, got %s", value.Type())
	}

	return string(str), nil
}
