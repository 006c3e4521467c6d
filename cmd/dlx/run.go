package main

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dlxrun/dlx/internal/platform"
	"github.com/dlxrun/dlx/internal/runner"
	"github.com/dlxrun/dlx/internal/urltpl"
)

var (
	runName         string
	runChecksum     string
	runTTL          time.Duration
	runForce        bool
	runPlatform     string
	runArch         string
	runSignatureURL string
	runKeyring      string
	runURLExpr      bool
)

var runCmd = &cobra.Command{
	Use:   "run [flags] URL [-- ARGS...]",
	Short: "Download a binary from a URL (if needed) and execute it",
	Long: `Run resolves the URL to a cache entry, downloads and installs the
binary when no valid cached copy exists, and executes it with the given
arguments. The URL may contain {os}, {arch}, and {exe} placeholders; with
--lua it is instead evaluated as a Lua expression against the read-only
"platform" table.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runName, "name", "", "payload filename inside the cache entry")
	runCmd.Flags().StringVar(&runChecksum, "checksum", "", "pin the expected sha256 of the artifact")
	runCmd.Flags().DurationVar(&runTTL, "ttl", 0, "cache validity window (default from config, 168h)")
	runCmd.Flags().BoolVar(&runForce, "force", false, "re-download even if a valid cached copy exists")
	runCmd.Flags().StringVar(&runPlatform, "platform", "", "override the detected OS")
	runCmd.Flags().StringVar(&runArch, "arch", "", "override the detected architecture")
	runCmd.Flags().StringVar(&runSignatureURL, "signature-url", "", "detached PGP signature to verify before install")
	runCmd.Flags().StringVar(&runKeyring, "keyring", "", "PGP keyring file for signature verification")
	runCmd.Flags().BoolVar(&runURLExpr, "lua", false, "treat URL as a Lua expression over the platform table")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return err
	}

	url := args[0]
	if runURLExpr {
		url, err = urltpl.Evaluate(url, info)
		if err != nil {
			return err
		}
	} else {
		url = urltpl.Expand(url, info)
	}

	r, err := runner.New(runner.Config{
		CacheRoot: cfg.CacheDir,
		Platform:  info,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ttl := runTTL
	if ttl <= 0 {
		ttl = cfg.TTL
	}

	result, err := r.Run(ctx, url, args[1:], runner.Options{
		Name:         runName,
		Checksum:     runChecksum,
		TTL:          ttl,
		Force:        runForce,
		Platform:     runPlatform,
		Arch:         runArch,
		SignatureURL: runSignatureURL,
		KeyringPath:  runKeyring,
		Spawn: runner.SpawnOptions{
			Env:    os.Environ(),
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
	})
	if err != nil {
		return err
	}

	// The runner hands back a started process; the CLI is the caller that
	// chooses to wait and mirror the exit code.
	if err := result.Cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}

	return nil
}
