package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"noteboard/internal/dbx"
	"noteboard/internal/server/models"
	"noteboard/internal/server/repositories/accounts"
	"noteboard/internal/server/repositories/records"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeAccountsRepo struct {
	getOut *accounts.AccountCredential
	getErr error
	calls  int
}

func (f *fakeAccountsRepo) GetByEmail(ctx context.Context, email string) (*accounts.AccountCredential, error) {
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAccountsRepo) Create(ctx context.Context, account *models.Account, cred *models.Credential) (*models.Account, error) {
	return account, nil
}

type fakeRecordsRepo struct {
	insertOut *models.Record
	insertErr error

	deleteErr error

	pageOut []*models.Record
	pageErr error

	afterOut []*models.Record
	afterErr error

	countOut int64
	countErr error

	calls int
}

func (f *fakeRecordsRepo) Insert(ctx context.Context, rec *models.Record) (*models.Record, error) {
	f.calls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if f.insertOut != nil {
		return f.insertOut, nil
	}
	rec.ID = 1
	return rec, nil
}

func (f *fakeRecordsRepo) DeleteByName(ctx context.Context, name string) error {
	f.calls++
	return f.deleteErr
}

func (f *fakeRecordsRepo) SelectPage(ctx context.Context, limit, offset int) ([]*models.Record, error) {
	f.calls++
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return f.pageOut, nil
}

func (f *fakeRecordsRepo) SelectAfter(ctx context.Context, cursor int64, limit int) ([]*models.Record, error) {
	f.calls++
	if f.afterErr != nil {
		return nil, f.afterErr
	}
	return f.afterOut, nil
}

func (f *fakeRecordsRepo) Count(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countOut, nil
}

type fakeRepoManager struct {
	accounts accounts.Repository
	records  records.Repository
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (f *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository { return f.accounts }

func (f *fakeRepoManager) Records(db dbx.DBTX) records.Repository { return f.records }
