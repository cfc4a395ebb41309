// Package update checks GitHub releases for a newer dsnscout version with a
// 24h on-disk cache.
package update

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	semver "github.com/blang/semver/v4"
)

const (
	repoLatestURL = "https://api.github.com/repos/dsnscout/dsnscout/releases/latest"
	cacheFileName = "update.json"
)

type cache struct {
	LastChecked time.Time `json:"last_checked"`
	Latest      string    `json:"latest"`
}

func configDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "dsnscout")
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "dsnscout")
}

func loadCache() (cache, error) {
	var c cache
	dir := configDir()
	if dir == "" {
		return c, errors.New("no config dir")
	}
	b, err := os.ReadFile(filepath.Join(dir, cacheFileName))
	if err != nil {
		return c, err
	}
	_ = json.Unmarshal(b, &c)
	return c, nil
}

func saveCache(c cache) {
	dir := configDir()
	if dir == "" {
		return
	}
	_ = os.MkdirAll(dir, 0o755)
	b, _ := json.MarshalIndent(c, "", "  ")
	_ = os.WriteFile(filepath.Join(dir, cacheFileName), b, 0o644)
}

func latestVersionOnline() (string, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	req, _ := http.NewRequest("GET", repoLatestURL, nil)
	req.Header.Set("User-Agent", "dsnscout-updater")
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var obj struct {
		TagName string `json:"tag_name"`
		Name    string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		return "", err
	}
	v := obj.TagName
	if v == "" {
		v = obj.Name
	}
	return v, nil
}

// Check returns (latest, isNewer, error). It uses a 24h cache and skips in
// CI.
func Check(current string, noNetwork bool) (string, bool, error) {
	if os.Getenv("CI") != "" || noNetwork {
		return "", false, nil
	}
	current = normalize(current)
	c, _ := loadCache()
	latest := c.Latest
	if time.Since(c.LastChecked) > 24*time.Hour || latest == "" {
		if v, err := latestVersionOnline(); err == nil {
			latest = normalize(v)
			c.Latest = latest
			c.LastChecked = time.Now()
			saveCache(c)
		}
	}
	if latest == "" || current == "" {
		return latest, false, nil
	}
	return latest, newer(latest, current), nil
}

func normalize(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

func newer(latest, current string) bool {
	l, err := semver.ParseTolerant(latest)
	if err != nil {
		return false
	}
	c, err := semver.ParseTolerant(current)
	if err != nil {
		return false
	}
	return l.GT(c)
}
