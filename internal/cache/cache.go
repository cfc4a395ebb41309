// Package cache persists the resolved DSN context for a project root so
// repeat CLI invocations can skip the walk. The detection engine itself
// never caches; this is the persistence collaborator layered on top of it
// by the CLI.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/dsnscout/dsnscout/internal/types"
)

// Entry is the persisted result of a previous successful detection.
type Entry struct {
	DSN        string    `json:"dsn"`
	Path       string    `json:"path"`
	Detector   string    `json:"detector"`
	FileHash   string    `json:"file_hash"`
	ResolvedAt time.Time `json:"resolved_at"`
}

func defaultPath(root string) string {
	// Prefer storing under .git to avoid accidental commits
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "dsnscout.json")
	}
	return filepath.Join(root, ".dsnscout-cache.json")
}

// Load reads the cached entry for root, if any.
func Load(root string) (Entry, error) {
	var e Entry
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(b, &e); err != nil {
		return e, err
	}
	return e, nil
}

// Save writes the entry for root.
func Save(root string, e Entry) error {
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(defaultPath(root), b, 0o644)
}

// Clear removes any cached entry for root.
func Clear(root string) error {
	err := os.Remove(defaultPath(root))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Fresh reports whether the source file the entry was resolved from still
// exists with unchanged content. A stale entry must trigger a rescan.
func (e Entry) Fresh() bool {
	if e.DSN == "" || e.Path == "" {
		return false
	}
	b, err := os.ReadFile(e.Path)
	if err != nil {
		return false
	}
	return Hash(b) == e.FileHash
}

// Detection converts the entry back into the engine's result shape.
func (e Entry) Detection() *types.Detection {
	return &types.Detection{DSN: e.DSN, Path: e.Path, Detector: e.Detector}
}

// Hash returns a short hex content key.
func Hash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
