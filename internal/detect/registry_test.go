package detect

import "testing"

func TestRegistryByExtension(t *testing.T) {
	reg := NewRegistry(Default())
	if got := reg.ByExtension(".go"); len(got) != 1 || got[0].Name != "Go" {
		t.Fatalf("unexpected detectors for .go: %+v", got)
	}
	if got := reg.ByExtension(".txt"); got != nil {
		t.Fatalf("unclaimed extension should yield nil, got %+v", got)
	}
	// Extensions are case-sensitive
	if got := reg.ByExtension(".GO"); got != nil {
		t.Fatalf("case-folded extension should yield nil, got %+v", got)
	}
}

func TestRegistryOrderIsRegistrationOrder(t *testing.T) {
	a := Detector{Name: "first", Extensions: []string{".x"}}
	b := Detector{Name: "second", Extensions: []string{".x"}}
	reg := NewRegistry([]Detector{a, b})
	got := reg.ByExtension(".x")
	if len(got) != 2 || got[0].Name != "first" || got[1].Name != "second" {
		t.Fatalf("shared extension must keep registration order: %+v", got)
	}
}

func TestRegistrySkipDir(t *testing.T) {
	reg := NewRegistry(Default())
	if !reg.SkipDir("node_modules", "web/node_modules") {
		t.Fatal("node_modules must be skipped by name")
	}
	if !reg.SkipDir("bundle", "vendor/bundle") {
		t.Fatal("vendor/bundle must be skipped by relative path")
	}
	if reg.SkipDir("src", "src") {
		t.Fatal("src must not be skipped")
	}
}
