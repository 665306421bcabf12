// Package scoring computes Petrenko indexes.
//
// A line's index is the sum of positional weights over its letters (0.5 for
// the first letter, 1.5 for the second, and so on) multiplied by the number of
// letters. Characters that are not Unicode letters take no weight. Annotated
// lines are split on a separator; the part before it is scored the same way
// and the first few words of the commentary after it get a separate index.
//
// Scoring functions take lines by value and return scored copies.
package scoring
