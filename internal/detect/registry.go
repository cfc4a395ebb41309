package detect

import "strings"

// Registry maps file extensions to the ordered list of detectors claiming
// them and aggregates every detector's skip directories for the walker. It
// is an explicit value built once at startup and passed by reference; there
// is no package-level singleton.
type Registry struct {
	detectors []Detector
	byExt     map[string][]Detector
	skipNames map[string]bool
	skipRels  map[string]bool
}

// NewRegistry builds a registry from detector metadata alone. Skip-dir
// entries containing a slash are matched against the root-relative path of a
// directory; plain entries are matched against its base name.
func NewRegistry(detectors []Detector) *Registry {
	r := &Registry{
		detectors: detectors,
		byExt:     make(map[string][]Detector),
		skipNames: make(map[string]bool),
		skipRels:  make(map[string]bool),
	}
	for _, d := range detectors {
		for _, ext := range d.Extensions {
			r.byExt[ext] = append(r.byExt[ext], d)
		}
		for _, dir := range d.SkipDirs {
			if strings.Contains(dir, "/") {
				r.skipRels[dir] = true
			} else {
				r.skipNames[dir] = true
			}
		}
	}
	return r
}

// ByExtension returns the detectors claiming ext (dot included) in
// registration order. Extensions are compared case-sensitively; an unclaimed
// extension yields nil and the file need not be read at all.
func (r *Registry) ByExtension(ext string) []Detector {
	return r.byExt[ext]
}

// SkipDir reports whether a directory should be pruned, given its base name
// and its slash-separated path relative to the scan root.
func (r *Registry) SkipDir(name, rel string) bool {
	if r.skipNames[name] {
		return true
	}
	return r.skipRels[rel]
}

// Detectors returns the registered set in order.
func (r *Registry) Detectors() []Detector {
	return r.detectors
}
