package conversions

import "time"

const (
	StatusSucceeded      = "succeeded"
	StatusFailed         = "failed"
	StatusTransferFailed = "transfer_failed"
)

// Conversion is the audit entry for one upload. File contents are never kept.
type Conversion struct {
	ID         string
	RequestID  string
	FileName   string
	MimeType   string
	SizeBytes  int64
	RowCount   int
	Status     string
	Error      string
	DurationMs int64
	CreatedAt  time.Time
}
