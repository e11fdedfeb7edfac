package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"noteboard/internal/common"
	"noteboard/internal/server/config"
	"noteboard/internal/server/models"
	"noteboard/internal/server/repositories/repomanager"
)

// RecordService implements the demo record mutations: insert with
// uniqueness-conflict detection, and name-keyed delete.
type RecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewRecordService constructs a RecordService using repositories and server config.
func NewRecordService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *RecordService {
	return &RecordService{db: db, repomanager: m}
}

// Create validates and stores a new record, returning its formatted public
// shape. Parameter presence is checked before the priority range, and both
// before any store access. A uniqueness conflict on name surfaces as
// common.ErrDuplicate.
func (s *RecordService) Create(ctx context.Context, name, message string, priority int) (*FormattedRecord, error) {
	if name == "" || message == "" {
		return nil, common.ErrMissingParams
	}
	if priority < 1 || priority > 3 {
		return nil, common.ErrInvalidPriority
	}

	repo := s.repomanager.Records(s.db)

	rec, err := repo.Insert(ctx, &models.Record{Name: name, Message: message, Priority: priority})
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.ErrDuplicate
		}
		return nil, fmt.Errorf("inserting record: %w", err)
	}

	out := formatRecord(rec)
	return &out, nil
}

// Delete removes the record with the exact name and returns a confirmation
// string. A missing record yields common.ErrNotFound, no matter how many
// times the delete is repeated.
func (s *RecordService) Delete(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", common.ErrMissingParams
	}

	repo := s.repomanager.Records(s.db)

	if err := repo.DeleteByName(ctx, name); err != nil {
		return "", err
	}

	return fmt.Sprintf("Deleted: %s", name), nil
}
