package engine

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/dsnscout/dsnscout/internal/detect"
)

// Walk traverses cfg.Root depth-first in sorted entry order and invokes fn
// for each candidate file: regular, claimed by at least one detector
// extension, within the size limit, and allowed by the glob filters.
// Directories are pruned before descent using the registry's skip-dir union
// plus the built-in VCS/dependency-cache lists. Symbolic links are never
// followed. Per-entry errors are swallowed; the only error Walk returns is
// context cancellation. fn returns false to stop the walk early.
func Walk(ctx context.Context, cfg Config, reg *detect.Registry, fn func(path string) bool) error {
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			if p == cfg.Root {
				return nil
			}
			name := d.Name()
			if isAlwaysPruned(name) {
				return filepath.SkipDir
			}
			if cfg.DefaultExcludes && isDefaultDirExcluded(name) {
				return filepath.SkipDir
			}
			rel, relErr := filepath.Rel(cfg.Root, p)
			if relErr != nil {
				return filepath.SkipDir
			}
			if reg.SkipDir(name, filepath.ToSlash(rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := filepath.Ext(d.Name())
		if ext == "" || len(reg.ByExtension(ext)) == 0 {
			return nil
		}
		rel, relErr := filepath.Rel(cfg.Root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		if info.Size() > cfg.MaxBytes {
			return nil
		}
		if !fn(p) {
			return filepath.SkipAll
		}
		return nil
	})
}

// looksBinary flags content with a NUL byte in the leading window; such
// files cannot hold a source-level DSN assignment.
func looksBinary(b []byte) bool {
	n := 800
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// allowedByGlobs returns true if the given relative path passes the
// include/exclude glob configuration. Include globs, when set, act as a
// positive filter; exclude globs are subtracted last. Matching uses
// forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(relPath, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(relPath, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
