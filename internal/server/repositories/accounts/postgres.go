package accounts

import (
	"context"
	"fmt"

	"noteboard/internal/common"
	"noteboard/internal/dbx"
	"noteboard/internal/server/models"
)

// PostgresRepository implements account/credential lookups over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*AccountCredential, error) {
	query :=
		`SELECT a.id, a.email, a.firstname, a.lastname, a.phone, a.username, a.role,
		        c.salted_hash, c.salt
		 FROM accounts a
		 JOIN credentials c ON c.account_id = a.id
		 WHERE a.email = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result *AccountCredential
	for rows.Next() {
		if result != nil {
			// a second row means the one-credential-per-account invariant
			// is broken; report it, never resolve it silently
			return nil, common.ErrIntegrity
		}
		ac := &AccountCredential{}
		if err := rows.Scan(
			&ac.Account.ID, &ac.Account.Email, &ac.Account.FirstName, &ac.Account.LastName,
			&ac.Account.Phone, &ac.Account.Username, &ac.Account.Role,
			&ac.SaltedHash, &ac.Salt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = ac
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if result == nil {
		return nil, common.ErrNotFound
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account, cred *models.Credential) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (email, firstname, lastname, phone, username, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.FirstName, account.LastName,
		account.Phone, account.Username, account.Role).Scan(&account.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	credQuery :=
		`INSERT INTO credentials (account_id, salted_hash, salt)
		 VALUES ($1, $2, $3)
		 `

	if _, err := r.db.ExecContext(ctx, credQuery, account.ID, cred.SaltedHash, cred.Salt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}
