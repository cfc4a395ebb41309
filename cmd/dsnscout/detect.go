package dsnscout

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dsnscout/dsnscout/internal/cache"
	"github.com/dsnscout/dsnscout/internal/config"
	"github.com/dsnscout/dsnscout/internal/detect"
	"github.com/dsnscout/dsnscout/internal/engine"
	"github.com/dsnscout/dsnscout/internal/project"
	"github.com/dsnscout/dsnscout/internal/report"
	"github.com/dsnscout/dsnscout/internal/update"
)

var (
	flagPath            string
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagDisable         string
	flagDefaultExcludes bool
	flagNoGitRoot       bool
	flagShowSource      bool
	flagFailMissing     bool
	flagTimeout         time.Duration
)

func init() {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Scan a project for its Sentry DSN",
		RunE:  runDetect,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these detectors (comma-separated names)")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, dist, minified bundles, etc.)")
	cmd.Flags().BoolVar(&flagNoGitRoot, "no-git-root", false, "scan the given path as-is instead of the enclosing git root")
	cmd.Flags().BoolVar(&flagShowSource, "show-source", false, "print the source line the DSN was found on")
	cmd.Flags().BoolVar(&flagFailMissing, "fail-missing", false, "exit 1 when no DSN is found")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "abort the scan after this duration (0 = no limit)")
}

func runDetect(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	if !flagNoGitRoot && !pickBool(false, lcfg.NoGitRoot, gcfg.NoGitRoot) {
		abs = project.Root(abs)
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}
	noCache := pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache)

	if !flagJSON {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'dsnscout --self-update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate {
			if v, err := selfUpdate(); err == nil {
				_, _ = fmt.Fprintf(os.Stderr, "updated to v%s; re-run command\n", v)
				return nil
			}
		}
	}

	reg := detect.NewRegistry(detect.Default())
	opts := report.PrintOptions{NoColor: noColor, ShowSource: flagShowSource}

	// Cached answer short-circuits the walk when the source file is
	// unchanged.
	if !noCache {
		if e, err := cache.Load(abs); err == nil && e.Fresh() {
			d := e.Detection()
			if flagJSON {
				return report.WriteJSON(os.Stdout, d, true)
			}
			opts.FromCache = true
			report.PrintDetection(os.Stdout, d, opts)
			return nil
		}
	}

	cfg := engine.Config{
		Root:             abs,
		IncludeGlobs:     pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:     pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:         pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:          pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		DisableDetectors: pickString(flagDisable, lcfg.Disable, gcfg.Disable),
		DefaultExcludes:  flagDefaultExcludes,
	}

	ctx := context.Background()
	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	// Textual progress on stderr; stdout stays machine-clean
	var progressed int
	if !flagJSON {
		_, _ = fmt.Fprintf(os.Stderr, "Scanning %s with %d detectors...\n", abs, len(reg.Detectors()))
		cfg.Progress = func() {
			progressed++
			if progressed%100 == 0 {
				_, _ = fmt.Fprintf(os.Stderr, "\rscanned %d files", progressed)
			}
		}
	}

	res, err := engine.Detect(ctx, cfg, reg)
	if progressed >= 100 {
		_, _ = fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return fmt.Errorf("detect error: %w", err)
	}

	opts.Duration = res.Duration
	opts.FilesScanned = res.FilesScanned

	if res.Detection == nil {
		if flagJSON {
			if err := report.WriteJSON(os.Stdout, nil, false); err != nil {
				return err
			}
		} else {
			report.PrintAbsence(os.Stdout, opts)
		}
		if flagFailMissing {
			os.Exit(1)
		}
		return nil
	}

	if !noCache {
		if b, rerr := os.ReadFile(res.Detection.Path); rerr == nil {
			_ = cache.Save(abs, cache.Entry{
				DSN:        res.Detection.DSN,
				Path:       res.Detection.Path,
				Detector:   res.Detection.Detector,
				FileHash:   cache.Hash(b),
				ResolvedAt: time.Now(),
			})
		}
	}

	if flagJSON {
		return report.WriteJSON(os.Stdout, res.Detection, false)
	}
	report.PrintDetection(os.Stdout, res.Detection, opts)
	return nil
}
