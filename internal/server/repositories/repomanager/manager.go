package repomanager

import (
	"context"
	"database/sql"

	"noteboard/internal/dbx"
	"noteboard/internal/server/repositories/accounts"
	"noteboard/internal/server/repositories/records"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Records(db dbx.DBTX) records.Repository
}
