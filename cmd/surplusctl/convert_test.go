package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"surplus-backend/internal/conversions"
	"surplus-backend/internal/extract/docxtest"
)

func TestRunConvertWritesAndVerifies(t *testing.T) {
	dir := t.TempDir()
	input := docxtest.WriteLines(t, dir, "sale.docx", "1,2,3", "", "4,5,6")
	output := filepath.Join(dir, "out", "sale.csv")

	var stdout bytes.Buffer
	if err := runConvert(context.Background(), input, output, true, &stdout); err != nil {
		t.Fatalf("runConvert: %v", err)
	}
	if !strings.Contains(stdout.String(), "wrote 2 rows") {
		t.Fatalf("unexpected output: %s", stdout.String())
	}
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestRunConvertCorruptedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.docx")
	if err := os.WriteFile(input, []byte("nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	output := filepath.Join(dir, "broken.csv")

	err := runConvert(context.Background(), input, output, false, &bytes.Buffer{})
	var extractErr *conversions.ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected no output file, stat err=%v", statErr)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	if got := defaultOutputPath("dir/list.docx"); got != "dir/list.csv" {
		t.Fatalf("unexpected default output: %s", got)
	}
}
