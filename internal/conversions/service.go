package conversions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"surplus-backend/internal/shared/metrics"
	"surplus-backend/internal/shared/storage/object"
	"surplus-backend/internal/shared/telemetry"
	"surplus-backend/internal/shared/util"
)

// OutputFileName is the download name of every generated table.
const OutputFileName = "output.csv"

var errStageUpload = errors.New("stage upload")

// Service stages uploads, runs the pipeline and records an audit trail.
type Service struct {
	Store     object.ObjectStore
	Repo      Repo
	Pipeline  Pipeline
	OutputDir string
}

// ConvertInput describes one uploaded document.
type ConvertInput struct {
	RequestID string
	FileName  string
	Body      io.Reader
}

// Result is a finished conversion. Close removes the generated table.
type Result struct {
	Conversion Conversion
	OutputPath string
	outputDir  string
}

// Open opens the generated table for streaming.
func (r *Result) Open() (*os.File, error) {
	return os.Open(r.OutputPath)
}

// Close deletes the per-conversion output directory.
func (r *Result) Close() error {
	if r == nil || r.outputDir == "" {
		return nil
	}
	return os.RemoveAll(r.outputDir)
}

// Convert stages the upload, converts it into a table at a path unique to
// this conversion and removes the staged upload before returning, whether
// or not the conversion succeeded.
func (s *Service) Convert(ctx context.Context, in ConvertInput) (*Result, error) {
	if in.Body == nil {
		return nil, ErrInvalidInput
	}
	fileName, err := util.SanitizeFileName(in.FileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start := time.Now()
	metrics.IncConversionStarted()
	conv := Conversion{
		ID:        uuid.NewString(),
		RequestID: in.RequestID,
		FileName:  fileName,
		CreatedAt: start.UTC(),
	}

	key, size, mimeType, err := s.Store.Save(ctx, conv.ID, fileName, in.Body)
	if err != nil {
		// A failed Save returns no key; drop whatever it left under the namespace.
		s.removeStaged(ctx, conv, conv.ID)
		err = fmt.Errorf("%w: %w", errStageUpload, err)
		s.finish(ctx, conv, start, err)
		return nil, err
	}
	conv.SizeBytes = size
	conv.MimeType = mimeType
	defer s.removeStaged(ctx, conv, key)

	inputPath, err := s.Store.Path(key)
	if err != nil {
		err = fmt.Errorf("resolve upload: %w", err)
		s.finish(ctx, conv, start, err)
		return nil, err
	}

	outputDir := filepath.Join(s.OutputDir, conv.ID)
	outputPath := filepath.Join(outputDir, OutputFileName)

	rows, err := s.Pipeline.Convert(ctx, inputPath, outputPath)
	if err != nil {
		_ = os.RemoveAll(outputDir)
		s.finish(ctx, conv, start, err)
		return nil, err
	}
	conv.RowCount = rows
	s.finish(ctx, conv, start, nil)

	return &Result{Conversion: conv, OutputPath: outputPath, outputDir: outputDir}, nil
}

func (s *Service) removeStaged(ctx context.Context, conv Conversion, key string) {
	if err := s.Store.Remove(context.WithoutCancel(ctx), key); err != nil {
		telemetry.Error("conversions.cleanup.failed", map[string]any{
			"conversion_id": conv.ID,
			"request_id":    conv.RequestID,
			"err":           err.Error(),
		})
	}
}

// MarkTransferFailed records that the generated table could not be delivered.
func (s *Service) MarkTransferFailed(ctx context.Context, conversionID string, cause error) {
	metrics.IncConversionTransferFailed()
	terr := &TransferError{ConversionID: conversionID, Err: cause}
	telemetry.Error("conversions.transfer.failed", map[string]any{
		"conversion_id": conversionID,
		"err":           terr.Error(),
	})
	if err := s.Repo.UpdateStatus(ctx, conversionID, StatusTransferFailed, terr.Error()); err != nil {
		telemetry.Error("conversions.audit.failed", map[string]any{
			"conversion_id": conversionID,
			"err":           err.Error(),
		})
	}
}

// List returns recent conversions newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Conversion, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) finish(ctx context.Context, conv Conversion, start time.Time, convErr error) {
	elapsed := time.Since(start)
	conv.DurationMs = elapsed.Milliseconds()
	metrics.ObserveConversionDurationMs(float64(elapsed.Microseconds()) / 1000.0)

	fields := map[string]any{
		"conversion_id": conv.ID,
		"request_id":    conv.RequestID,
		"file_name":     conv.FileName,
		"size_bytes":    conv.SizeBytes,
		"duration_ms":   conv.DurationMs,
	}
	if convErr != nil {
		metrics.IncConversionFailed()
		conv.Status = StatusFailed
		conv.Error = convErr.Error()
		fields["err"] = convErr.Error()
		telemetry.Error(failureEvent(convErr), fields)
	} else {
		metrics.IncConversionCompleted()
		conv.Status = StatusSucceeded
		fields["row_count"] = conv.RowCount
		telemetry.Info("conversions.completed", fields)
	}

	if err := s.Repo.Create(context.WithoutCancel(ctx), conv); err != nil {
		telemetry.Error("conversions.audit.failed", map[string]any{
			"conversion_id": conv.ID,
			"err":           err.Error(),
		})
	}
}

func failureEvent(err error) string {
	var extractErr *ExtractionError
	var writeErr *WriteError
	switch {
	case errors.As(err, &extractErr):
		return "conversions.extract.failed"
	case errors.As(err, &writeErr):
		return "conversions.write.failed"
	case errors.Is(err, errStageUpload):
		return "conversions.stage.failed"
	default:
		return "conversions.failed"
	}
}
