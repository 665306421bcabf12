// Package logging builds the slog loggers petrenko writes diagnostics with.
//
// Console records read as one line per event:
//
//	2026-10-15 09:12:01 WARN  align: annotated line skipped (en.txt:4) reason="missing commentary separator" run_id=...
//
// The component, input file and line number are lifted out of the attribute
// list into that prefix. JSON records keep every attribute as a field.
package logging
