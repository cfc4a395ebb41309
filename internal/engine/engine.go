package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dsnscout/dsnscout/internal/detect"
	"github.com/dsnscout/dsnscout/internal/dsn"
	"github.com/dsnscout/dsnscout/internal/types"
)

// Config controls a detection scan: scope, size limits, and worker count.
type Config struct {
	Root             string
	IncludeGlobs     string
	ExcludeGlobs     string
	MaxBytes         int64
	Threads          int
	DefaultExcludes  bool
	DisableDetectors string
	Progress         func()
}

// Result carries the scan outcome. Detection is nil when the tree was
// exhausted without a validated match; that is a normal outcome, not an
// error.
type Result struct {
	Detection    *types.Detection
	State        types.State
	FilesScanned int
	Duration     time.Duration
}

const defaultMaxBytes = 1 << 20

// Detect scans cfg.Root for a DSN literal using the given registry. The
// first validated match in deterministic traversal order wins. The only
// errors are an invalid root and context cancellation; "no DSN anywhere"
// comes back as StateExhausted with a nil Detection.
func Detect(ctx context.Context, cfg Config, reg *detect.Registry) (Result, error) {
	res := Result{State: types.StateScanning}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return res, fmt.Errorf("invalid root %q: %w", cfg.Root, err)
	}
	st, err := os.Stat(root)
	if err != nil {
		return res, fmt.Errorf("invalid root %q: %w", cfg.Root, err)
	}
	if !st.IsDir() {
		return res, fmt.Errorf("root %q is not a directory", cfg.Root)
	}
	cfg.Root = root
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > 32 {
		threads = 32
	}
	batchSize := threads * 4

	disabled := map[string]bool{}
	for _, name := range strings.Split(cfg.DisableDetectors, ",") {
		if name = strings.TrimSpace(name); name != "" {
			disabled[name] = true
		}
	}

	started := time.Now()
	batch := make([]string, 0, batchSize)

	flush := func() *types.Detection {
		if len(batch) == 0 {
			return nil
		}
		found := processBatch(reg, disabled, batch, threads)
		res.FilesScanned += len(batch)
		if cfg.Progress != nil {
			for range batch {
				cfg.Progress()
			}
		}
		batch = batch[:0]
		return found
	}

	walkErr := Walk(ctx, cfg, reg, func(path string) bool {
		batch = append(batch, path)
		if len(batch) < batchSize {
			return true
		}
		if d := flush(); d != nil {
			res.Detection = d
			return false
		}
		return true
	})
	if walkErr != nil {
		return res, walkErr
	}
	if res.Detection == nil {
		res.Detection = flush()
	}

	res.Duration = time.Since(started)
	if res.Detection != nil {
		res.State = types.StateFound
	} else {
		res.State = types.StateExhausted
	}
	return res, nil
}

// processBatch reads and evaluates a batch of candidate files concurrently,
// then inspects the results strictly in traversal order. A speculative match
// in a later-ordered file never displaces one from an earlier file.
func processBatch(reg *detect.Registry, disabled map[string]bool, paths []string, threads int) *types.Detection {
	results := make([]*types.Detection, len(paths))
	sem := make(chan struct{}, threads)
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = evaluate(reg, disabled, p)
		}(i, p)
	}
	wg.Wait()
	for _, d := range results {
		if d != nil {
			return d
		}
	}
	return nil
}

// evaluate reads one file and runs its matching detectors in registry
// order. The file is read exactly once; read errors mean the file is
// skipped. A candidate that fails validation is treated as absence for that
// detector and the next one gets its turn.
func evaluate(reg *detect.Registry, disabled map[string]bool, path string) *types.Detection {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	if looksBinary(data) {
		return nil
	}
	text := string(data)
	for _, det := range reg.ByExtension(filepath.Ext(path)) {
		if disabled[det.Name] {
			continue
		}
		cand, ok := extractSafe(det, text)
		if !ok {
			continue
		}
		canonical, ok := dsn.Validate(cand)
		if !ok {
			continue
		}
		return &types.Detection{DSN: canonical, Path: path, Detector: det.Name}
	}
	return nil
}

// extractSafe shields the scan from a detector panicking on malformed
// input; a panic counts as absence for that detector and file.
func extractSafe(det detect.Detector, text string) (cand string, ok bool) {
	defer func() {
		if recover() != nil {
			cand, ok = "", false
		}
	}()
	return det.Extract(text)
}
