// Package dsnscout provides the command-line interface for the dsnscout
// tool. It configures subcommands (detect, detectors, purge), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/dsnscout/dsnscout/cmd/dsnscout"
//	func main() { dsnscout.Execute() }
package dsnscout
