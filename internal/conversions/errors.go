package conversions

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// ExtractionError reports a document that could not be read as text.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// WriteError reports a filesystem failure while producing the table.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// TransferError reports a failure while streaming the table to the client.
type TransferError struct {
	ConversionID string
	Err          error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer %s: %v", e.ConversionID, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
