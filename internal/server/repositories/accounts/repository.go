// Package accounts provides the credential store accessor: parameterized
// queries over the accounts and credentials tables, no business logic.
package accounts

import (
	"context"

	"noteboard/internal/server/models"
)

// AccountCredential is an account row joined to its credential row.
type AccountCredential struct {
	Account    models.Account
	SaltedHash []byte
	Salt       []byte
}

type Repository interface {
	// GetByEmail fetches the credential row joined to the account row.
	// Returns common.ErrNotFound for zero rows and common.ErrIntegrity when
	// the one-credential-per-account invariant is violated.
	GetByEmail(ctx context.Context, email string) (*AccountCredential, error)

	// Create inserts an account and its credential. Used by out-of-band
	// account seeding, not by the login path.
	Create(ctx context.Context, account *models.Account, cred *models.Credential) (*models.Account, error)
}
