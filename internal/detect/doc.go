// Package detect implements the per-language DSN detectors and the extension
// registry that dispatches files to them. Detectors are a closed,
// compile-time set of values; each one knows the idiomatic ways a DSN
// literal shows up in its ecosystem and refuses anything that is sourced
// from the environment at runtime. Extraction works on surface syntax only,
// never by evaluating the target code.
package detect
