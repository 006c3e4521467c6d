package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dlxrun/dlx/internal/cache"
	"github.com/dlxrun/dlx/internal/fetch"
	"github.com/dlxrun/dlx/internal/platform"
)

// Runner orchestrates cache lookup, download, verification, installation,
// and execution for a single artifact URL.
type Runner struct {
	layout     cache.Layout
	checker    *cache.Checker
	downloader *Downloader
	installer  *Installer
	clock      cache.Clock
	platform   *platform.Info
	log        logrus.FieldLogger
}

// Config holds construction parameters for the runner. All collaborators
// are injected here, once; the runner keeps no lazily-initialized state.
type Config struct {
	// CacheRoot is the cache root directory (required).
	CacheRoot string
	// Platform contains detected OS and architecture (required).
	Platform *platform.Info
	// Fetcher performs HTTP GETs. Defaults to fetch.NewClient().
	Fetcher *fetch.Client
	// Clock supplies timestamps. Defaults to the system clock.
	Clock cache.Clock
	// Logger receives structured progress events. Defaults to the
	// standard logrus logger.
	Logger logrus.FieldLogger
}

// New creates a runner.
func New(cfg Config) (*Runner, error) {
	if cfg.CacheRoot == "" {
		return nil, fmt.Errorf("CacheRoot is required")
	}
	if cfg.Platform == nil {
		return nil, fmt.Errorf("Platform is required")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = cache.RealClock{}
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Runner{
		layout:     cache.NewLayout(cfg.CacheRoot),
		checker:    cache.NewChecker(clock),
		downloader: NewDownloader(cfg.Fetcher, log),
		installer:  NewInstaller(log),
		clock:      clock,
		platform:   cfg.Platform,
		log:        log,
	}, nil
}

// Layout exposes the runner's cache layout for maintenance operations.
func (r *Runner) Layout() cache.Layout {
	return r.layout
}

// Run executes the artifact at url with the given arguments, downloading
// and installing it first unless a valid cached copy exists.
//
// The returned Result carries the started subprocess; Run does not wait for
// it. If anything fails before launch, no subprocess exists and no partial
// payload is visible at the final path.
func (r *Runner) Run(ctx context.Context, url string, args []string, opts Options) (*Result, error) {
	if url == "" {
		return nil, fmt.Errorf("artifact URL is required")
	}

	osName, arch := r.resolvePlatform(opts)

	name := opts.Name
	if name == "" {
		name = defaultBinaryName(osName, arch)
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	id := cache.Identity(url)
	entryDir := r.layout.EntryDir(id)
	binaryPath := r.layout.BinaryPath(id, name)

	checksum, reused := "", false
	if !opts.Force && r.checker.Valid(entryDir, ttl) {
		// Metadata can vanish between the validity check and this read;
		// fall through to a fresh download instead of failing.
		if meta, ok := cache.ReadMetadata(entryDir); ok && fileExists(binaryPath) {
			checksum = meta.Checksum
			reused = true
			r.log.WithFields(logrus.Fields{
				"url":  url,
				"path": binaryPath,
			}).Debug("reusing cached binary")
		}
	}

	if !reused {
		sum, err := r.populate(ctx, url, entryDir, binaryPath, osName, arch, opts)
		if err != nil {
			return nil, err
		}
		checksum = sum
	}

	cmd, err := Launch(binaryPath, args, opts.Spawn)
	if err != nil {
		return nil, err
	}

	return &Result{
		BinaryPath: binaryPath,
		Downloaded: !reused,
		Checksum:   checksum,
		Cmd:        cmd,
	}, nil
}

// populate downloads, verifies, and installs the artifact, then records
// metadata. Returns the payload checksum.
func (r *Runner) populate(ctx context.Context, url, entryDir, binaryPath, osName, arch string, opts Options) (string, error) {
	start := time.Now()

	payload, sum, err := r.downloader.Download(ctx, url, opts.Checksum)
	if err != nil {
		return "", err
	}

	if opts.SignatureURL != "" {
		if err := r.verifySignature(ctx, payload, opts); err != nil {
			return "", err
		}
	}

	if err := r.installer.Install(entryDir, binaryPath, payload); err != nil {
		return "", err
	}

	// Metadata only after the payload is durably in place.
	meta := &cache.Metadata{
		URL:       url,
		Checksum:  sum,
		Platform:  osName,
		Arch:      arch,
		Timestamp: r.clock.Now().UnixMilli(),
		Version:   cache.SchemaVersion,
	}
	if err := cache.WriteMetadata(entryDir, meta); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"url":      url,
		"path":     binaryPath,
		"checksum": sum,
		"elapsed":  time.Since(start),
	}).Info("installed binary")

	return sum, nil
}

// verifySignature fetches the detached signature and checks it against the
// payload before anything is installed.
func (r *Runner) verifySignature(ctx context.Context, payload []byte, opts Options) error {
	if opts.KeyringPath == "" {
		return fmt.Errorf("signature verification requires a keyring path")
	}

	sig, err := r.downloader.fetcher.Get(ctx, opts.SignatureURL)
	if err != nil {
		return fmt.Errorf("download signature: %w", err)
	}

	if err := VerifyDetachedSignature(payload, sig, opts.KeyringPath); err != nil {
		return fmt.Errorf("signature verification failed for %s: %w", opts.SignatureURL, err)
	}

	return nil
}

// resolvePlatform applies option overrides on top of the detected platform.
func (r *Runner) resolvePlatform(opts Options) (string, string) {
	osName := opts.Platform
	if osName == "" {
		osName = r.platform.OS
	}

	arch := opts.Arch
	if arch == "" {
		arch = r.platform.Arch
	} else {
		arch = platform.NormalizeArch(arch)
	}

	return osName, arch
}

// defaultBinaryName derives the payload filename when the caller supplies
// none.
func defaultBinaryName(osName, arch string) string {
	name := fmt.Sprintf("binary-%s-%s", osName, arch)
	if osName == "windows" {
		name += ".exe"
	}
	return name
}

// fileExists checks if a file exists and is not empty.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
