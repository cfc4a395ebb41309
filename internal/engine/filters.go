package engine

import "strings"

// Pruned unconditionally: version-control metadata and package-manager
// caches are never source.
var vcsMetaDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
	".bzr": true,
}

var dependencyCacheDirs = map[string]bool{
	"node_modules":     true,
	"bower_components": true,
	"__pycache__":      true,
	".venv":            true,
	"venv":             true,
	".tox":             true,
	".yarn":            true,
	".pnpm-store":      true,
}

// Pruned when default excludes are enabled: generated/output trees that are
// noisy and never the canonical home of an SDK init call.
var defaultExcludeDirs = map[string]bool{
	"dist":     true,
	"build":    true,
	"out":      true,
	"coverage": true,
	"bin":      true,
	"obj":      true,
	"target":   true,
	".idea":    true,
	".vscode":  true,
}

// Generated or bundled files skipped when default excludes are enabled.
var defaultExcludeFileSuffixes = []string{
	".min.js", ".bundle.js", ".d.ts",
	".pb.go", ".gen.go",
}

func isAlwaysPruned(name string) bool {
	return vcsMetaDirs[name] || dependencyCacheDirs[name] || strings.HasPrefix(name, ".git")
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name]
}

func isDefaultFileExcluded(lowerRel string) bool {
	for _, s := range defaultExcludeFileSuffixes {
		if strings.HasSuffix(lowerRel, s) {
			return true
		}
	}
	return strings.Contains(lowerRel, ".gen.")
}
