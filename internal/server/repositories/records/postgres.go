package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"noteboard/internal/common"
	"noteboard/internal/dbx"
	"noteboard/internal/server/models"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// PostgresRepository implements record storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// isUniqueViolation matches the driver's structured error, not the message
// text.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *PostgresRepository) Insert(ctx context.Context, rec *models.Record) (*models.Record, error) {
	query :=
		`INSERT INTO records (name, message, priority)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, rec.Name, rec.Message, rec.Priority).Scan(&rec.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrDuplicate
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) DeleteByName(ctx context.Context, name string) error {
	query := `DELETE FROM records WHERE name = $1`

	res, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		// names are unique, so this means the constraint is gone
		return common.ErrIntegrity
	}
}

func (r *PostgresRepository) SelectPage(ctx context.Context, limit, offset int) ([]*models.Record, error) {
	query :=
		`SELECT id, name, message, priority FROM records
		 ORDER BY id ASC
		 LIMIT $1 OFFSET $2
		 `

	return r.selectRecords(ctx, query, limit, offset)
}

func (r *PostgresRepository) SelectAfter(ctx context.Context, cursor int64, limit int) ([]*models.Record, error) {
	query :=
		`SELECT id, name, message, priority FROM records
		 WHERE id > $1
		 ORDER BY id ASC
		 LIMIT $2
		 `

	return r.selectRecords(ctx, query, cursor, limit)
}

func (r *PostgresRepository) selectRecords(ctx context.Context, query string, args ...any) ([]*models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Record
	for rows.Next() {
		var item models.Record
		if err := rows.Scan(&item.ID, &item.Name, &item.Message, &item.Priority); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM records`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}
