package dsnscout

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagThreads       int
	flagNoColor       bool
	flagNoCache       bool
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the dsnscout CLI.
var rootCmd = &cobra.Command{
	Use:           "dsnscout",
	Short:         "Find the Sentry DSN configured in a project",
	Long:          "Dsnscout walks a project tree and reports the first valid Sentry DSN written as a source literal, along with the file and language it came from.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

// Execute runs the dsnscout CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "ignore and skip the resolved-DSN cache")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update dsnscout to the latest release")
}
