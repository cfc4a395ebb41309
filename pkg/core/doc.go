// Package core provides a small, stable facade over dsnscout's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without reaching
// into internal implementation packages.
//
// Example:
//
//	d, found, err := core.Detect(context.Background(), core.Config{Root: "."})
//	if err != nil { /* handle */ }
//	if found {
//		fmt.Println(d.DSN)
//	}
package core
