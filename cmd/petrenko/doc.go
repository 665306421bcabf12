// Package main hosts the petrenko CLI entrypoint and command graph.
//
// The Cobra-based command tree reads a source-language file and an annotated
// target-language file, pairs their lines by Petrenko index, and prints the
// probable translations for manual review. It also lists per-line scores and
// scaffolds configuration.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
