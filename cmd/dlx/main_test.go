package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dlxrun/dlx/internal/testutil"
)

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestCleanupCommandEmptyCache(t *testing.T) {
	testutil.SetupTestEnv(t)

	out := execute(t, "cleanup")
	if out != "removed 0 cache entries\n" {
		t.Errorf("output = %q", out)
	}
}

func TestListCommandEmptyCache(t *testing.T) {
	testutil.SetupTestEnv(t)

	out := execute(t, "list")
	if !strings.Contains(out, "cache is empty") {
		t.Errorf("output = %q", out)
	}
}

func TestClearCommandEmptyCache(t *testing.T) {
	testutil.SetupTestEnv(t)

	execute(t, "clear")
}
