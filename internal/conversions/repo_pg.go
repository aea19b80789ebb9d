package conversions

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a conversion.
func (r *PGRepo) Create(ctx context.Context, conv Conversion) error {
	const query = `
INSERT INTO conversions (
    id,
    request_id,
    file_name,
    mime_type,
    size_bytes,
    row_count,
    status,
    error,
    duration_ms,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var errMsg sql.NullString
	if conv.Error != "" {
		errMsg = sql.NullString{String: conv.Error, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		conv.ID,
		conv.RequestID,
		conv.FileName,
		conv.MimeType,
		conv.SizeBytes,
		conv.RowCount,
		conv.Status,
		errMsg,
		conv.DurationMs,
		conv.CreatedAt,
	)
	return err
}

// UpdateStatus changes the status of a stored conversion.
func (r *PGRepo) UpdateStatus(ctx context.Context, id, status, errMsg string) error {
	const query = `UPDATE conversions SET status = $2, error = $3 WHERE id = $1`

	var msg sql.NullString
	if errMsg != "" {
		msg = sql.NullString{String: errMsg, Valid: true}
	}
	res, err := r.DB.ExecContext(ctx, query, id, status, msg)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns conversions newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Conversion, error) {
	const query = `
SELECT id, request_id, file_name, mime_type, size_bytes, row_count, status, error, duration_ms, created_at
FROM conversions
ORDER BY created_at DESC
LIMIT NULLIF($1, 0) OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Conversion{}
	for rows.Next() {
		var conv Conversion
		var errMsg sql.NullString
		if err := rows.Scan(
			&conv.ID,
			&conv.RequestID,
			&conv.FileName,
			&conv.MimeType,
			&conv.SizeBytes,
			&conv.RowCount,
			&conv.Status,
			&errMsg,
			&conv.DurationMs,
			&conv.CreatedAt,
		); err != nil {
			return nil, err
		}
		conv.Error = errMsg.String
		out = append(out, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
