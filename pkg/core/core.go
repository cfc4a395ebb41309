package core

import (
	"context"

	"github.com/dsnscout/dsnscout/internal/detect"
	"github.com/dsnscout/dsnscout/internal/engine"
	"github.com/dsnscout/dsnscout/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Detection = types.Detection

// Detect is the stable entrypoint for other programs. It walks cfg.Root with
// the default detector set and returns the first valid DSN, or found=false
// when the tree holds none. An error is returned only when the scan itself
// could not run.
func Detect(ctx context.Context, cfg Config) (*Detection, bool, error) {
	reg := detect.NewRegistry(detect.Default())
	res, err := engine.Detect(ctx, cfg, reg)
	if err != nil {
		return nil, false, err
	}
	return res.Detection, res.Detection != nil, nil
}

// DetectorNames returns the names of the configured detectors in priority
// order. This is exposed for convenience to avoid importing internals
// directly.
func DetectorNames() []string {
	detectors := detect.Default()
	names := make([]string, 0, len(detectors))
	for _, d := range detectors {
		names = append(names, d.Name)
	}
	return names
}
