package conversions

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"surplus-backend/internal/extract"
	"surplus-backend/internal/extract/docxtest"
	"surplus-backend/internal/table"
)

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

func readTable(t *testing.T, path string) []table.Record {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open table: %v", err)
	}
	defer f.Close()
	records, err := table.Read(f)
	if err != nil {
		t.Fatalf("read table: %v", err)
	}
	return records
}

func TestPipelineConvertDocx(t *testing.T) {
	dir := t.TempDir()
	input := docxtest.WriteLines(t, dir, "sale.docx",
		"100,200,50,2024-01-01,CASE1,PID1,Tax,John,Doe,123 Main St,Metropolis,CA,90001,456 Oak Ave,Metropolis,CA,90002,Acme County",
		"   ",
		"1,2,3",
	)
	output := filepath.Join(dir, "out", "output.csv")

	rows, err := Pipeline{Extractor: extract.DocxExtractor{}}.Convert(context.Background(), input, output)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if rows != 2 {
		t.Fatalf("expected 2 rows, got %d", rows)
	}

	records := readTable(t, output)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if v, _ := records[0].Get("county"); v != "Acme County" {
		t.Fatalf("unexpected county: %q", v)
	}
	if v, _ := records[1].Get("date_sold"); v != table.Undefined {
		t.Fatalf("expected undefined date_sold, got %q", v)
	}
}

func TestPipelineExtractionErrorLeavesNoOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "output.csv")
	cause := errors.New("not a docx")

	_, err := Pipeline{Extractor: stubExtractor{err: cause}}.Convert(context.Background(), "in.docx", output)

	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped, got %v", err)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected no output file, stat err=%v", statErr)
	}
}

func TestPipelineWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := Pipeline{Extractor: stubExtractor{text: "1,2,3"}}.Convert(context.Background(), "in.docx", filepath.Join(blocker, "output.csv"))

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected WriteError, got %v", err)
	}
}

func TestPipelineRowCountMatchesNonBlankLines(t *testing.T) {
	output := filepath.Join(t.TempDir(), "output.csv")
	text := "a\n\nb\n \t \nc\nd\n"

	rows, err := Pipeline{Extractor: stubExtractor{text: text}}.Convert(context.Background(), "in.docx", output)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if rows != 4 {
		t.Fatalf("expected 4 rows, got %d", rows)
	}
	records := readTable(t, output)
	for i, want := range []string{"a", "b", "c", "d"} {
		if records[i][0] != want {
			t.Fatalf("record %d: expected %q, got %q", i, want, records[i][0])
		}
	}
}
