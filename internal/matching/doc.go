// Package matching pairs source lines with annotated lines whose composite
// score (index plus commentary index) equals the source line's index.
//
// The comparison sits behind a Predicate so exact equality, the default,
// can be swapped for a tolerance-bounded check without touching scoring.
package matching
