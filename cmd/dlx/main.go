package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dlxrun/dlx/internal/config"
	"github.com/dlxrun/dlx/internal/logging"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Global flags
var (
	cfgFile  string
	cacheDir string
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "dlx",
	Short: "Run executables straight from their download URLs",
	Long: `dlx downloads an executable artifact from a URL, caches it in a
content-addressed directory under your user cache, verifies its integrity,
and runs it as a subprocess. Subsequent invocations reuse the cached copy
until it expires.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dlx.yaml)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "cache root directory (default is the user cache dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to a rotating file instead of stderr")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
}

// setup resolves configuration and builds the logger. Flag values override
// config file and environment.
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if cacheDir != "" {
		cfg.CacheDir = cacheDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	logger, err := logging.Init(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
