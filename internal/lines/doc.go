// Package lines holds the line records the aligner works on and the reader
// that produces them.
//
// A TextLine is a source-language line. An AnnotatedLine is a target-language
// line whose raw text carries a trailing commentary after a separator. Both
// start unscored; the scoring package returns scored copies and the Store
// keeps them in input order so the matcher can walk them deterministically.
package lines
