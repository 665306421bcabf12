// Package align runs the read, score, and match pipeline over a pair of
// files.
//
// Every line of both sides is scored before matching begins. Malformed
// annotated lines are logged and skipped unless the runner is strict. Each
// run carries a UUID so log records from one invocation can be correlated.
package align
