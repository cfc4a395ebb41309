// Package project resolves the directory a detection scan should start
// from.
package project

import (
	git "github.com/go-git/go-git/v5"
)

// Root maps path to the root of its enclosing git worktree so running the
// CLI from a subdirectory scans the whole project. Outside a repository (or
// in a bare one) the path is returned unchanged.
func Root(path string) string {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return path
	}
	wt, err := repo.Worktree()
	if err != nil {
		return path
	}
	return wt.Filesystem.Root()
}
