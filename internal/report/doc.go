// Package report renders alignment results for review.
//
// Three formats are supported: plain text laid out as an indented list of
// probable translations under each source line, a go-pretty table, and JSON
// for downstream tooling. An empty result is reported explicitly rather than
// printing nothing.
package report
