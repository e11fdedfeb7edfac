// Package records provides PostgreSQL-backed persistence for the demo
// record set: inserts, name-keyed deletes and the two page queries.
package records

import (
	"context"

	"noteboard/internal/server/models"
)

type Repository interface {
	// Insert stores a record and fills in its store-assigned id. A unique
	// violation on name maps to common.ErrDuplicate.
	Insert(ctx context.Context, rec *models.Record) (*models.Record, error)

	// DeleteByName removes the record with the exact name. Zero rows
	// affected maps to common.ErrNotFound; more than one (impossible under
	// the uniqueness constraint) to common.ErrIntegrity.
	DeleteByName(ctx context.Context, name string) error

	// SelectPage returns records ordered by ascending id, skipping offset
	// rows and taking at most limit.
	SelectPage(ctx context.Context, limit, offset int) ([]*models.Record, error)

	// SelectAfter returns at most limit records with id strictly greater
	// than cursor, ordered by ascending id.
	SelectAfter(ctx context.Context, cursor int64, limit int) ([]*models.Record, error)

	// Count returns the full-table record count. A separate query from the
	// page fetch, so the value may be stale relative to a just-fetched
	// page, and it is O(n) on large tables.
	Count(ctx context.Context) (int64, error)
}
