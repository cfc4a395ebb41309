package detect

// Detector describes one supported ecosystem. Extensions and SkipDirs are
// declarative metadata: the registry and walker consume them without ever
// invoking Extract. Extract is a pure function of file text; it returns the
// first plausible DSN literal, or false when the file sets its DSN from the
// environment, interpolates it, or simply has none. Detectors hold no state.
type Detector struct {
	Name       string
	Extensions []string
	SkipDirs   []string
	Extract    func(text string) (string, bool)
}

// Default returns the compiled-in detector set in registration order. When
// two detectors claim the same extension, the one registered first wins for
// files where both extract a candidate.
func Default() []Detector {
	return []Detector{
		golangDetector,
		javascriptDetector,
		typescriptDetector,
		pythonDetector,
		rubyDetector,
		phpDetector,
		javaDetector,
		kotlinDetector,
		propertiesDetector,
		csharpDetector,
		elixirDetector,
		rustDetector,
		dartDetector,
		swiftDetector,
	}
}
