package conversions

import "context"

// Repo persists conversion audit entries.
type Repo interface {
	Create(ctx context.Context, conv Conversion) error
	UpdateStatus(ctx context.Context, id, status, errMsg string) error
	List(ctx context.Context, limit, offset int) ([]Conversion, error)
}
