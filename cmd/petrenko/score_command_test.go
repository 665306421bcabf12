package main

import (
	"encoding/json"
	"testing"

	"petrenko/internal/report"
)

func TestScoreSourceLines(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.file(t, "source.txt", "ab", "xyz")

	out, _, err := runCLI(t, []string{"score", path}, env.configPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	requireContains(t, out, "xyz")
	requireContains(t, out, "13.5")
	requireContains(t, out, "2 lines")
}

func TestScoreAnnotatedJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.file(t, "annotated.txt", "|ab", "oops", "cd|")

	out, _, err := runCLI(t, []string{"score", "--annotated", "--format", "json", path}, env.configPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	var rows []report.ScoreRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Composite != 4 || rows[0].CommentaryIndex != 4 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Line != 2 || rows[1].Error == "" {
		t.Fatalf("expected error on line 2, got %+v", rows[1])
	}
	// Blank commentary keeps the raw weighted sum.
	if rows[2].Index != 2 || rows[2].CommentaryIndex != 0 {
		t.Fatalf("unexpected blank commentary row: %+v", rows[2])
	}
}

func TestScoreUsesConfiguredFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("PETRENKO_OUTPUT_FORMAT", "json")
	path := env.file(t, "source.txt", "ab")

	out, _, err := runCLI(t, []string{"score", path}, env.configPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	var rows []report.ScoreRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(rows) != 1 || rows[0].Index != 4 || rows[0].Length != 2 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
