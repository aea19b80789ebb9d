package conversions

import (
	"context"
	"os"

	"surplus-backend/internal/table"
)

// TextExtractor turns a document on disk into plain text with newlines.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// Pipeline runs extraction, row mapping and table writing for one document.
type Pipeline struct {
	Extractor TextExtractor
}

// Convert reads inputPath and writes the table to outputPath. It returns the
// number of records written. No output file exists when an error is returned.
func (p Pipeline) Convert(ctx context.Context, inputPath, outputPath string) (int, error) {
	text, err := p.Extractor.ExtractText(ctx, inputPath)
	if err != nil {
		return 0, &ExtractionError{Path: inputPath, Err: err}
	}

	records := table.MapText(text)
	if err := table.WriteFile(outputPath, records); err != nil {
		_ = os.Remove(outputPath)
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	return len(records), nil
}
