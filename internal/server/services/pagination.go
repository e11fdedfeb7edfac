package services

import (
	"context"
	"database/sql"
	"fmt"

	"noteboard/internal/server/config"
	"noteboard/internal/server/repositories/repomanager"
)

// DefaultLimit is used whenever a caller omits the page size or supplies a
// non-positive one.
const DefaultLimit = 10

// OffsetMeta is the continuation metadata of the offset strategy. NextPage
// is plain arithmetic (limit + offset) and is never clamped to
// TotalRecords; requesting a page beyond the data returns an empty entry
// set, not an error.
type OffsetMeta struct {
	TotalRecords int64 `json:"totalRecords"`
	Limit        int   `json:"limit"`
	Offset       int   `json:"offset"`
	NextPage     int   `json:"nextPage"`
}

// CursorMeta is the continuation metadata of the cursor strategy. Cursor is
// the maximum id among the returned rows, or the input cursor unchanged
// when the page came back empty.
type CursorMeta struct {
	TotalRecords int64 `json:"totalRecords"`
	Limit        int   `json:"limit"`
	Cursor       int64 `json:"cursor"`
}

type OffsetPage struct {
	Entries    []FormattedRecord `json:"entries"`
	Pagination OffsetMeta        `json:"pagination"`
}

type CursorPage struct {
	Entries    []FormattedRecord `json:"entries"`
	Pagination CursorMeta        `json:"pagination"`
}

// PageService computes bounded ordered pages over the record set and
// derives their continuation metadata.
type PageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewPageService constructs a PageService using repositories and server config.
func NewPageService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *PageService {
	return &PageService{db: db, repomanager: m}
}

// NormalizeLimit clamps a requested page size: anything non-positive falls
// back to DefaultLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// NormalizeOffset clamps a requested offset: anything negative falls back
// to 0.
func NormalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// NormalizeCursor clamps a requested cursor: anything negative falls back
// to 0. Identifiers start at 1, so 0 is a safe before-the-beginning
// sentinel.
func NormalizeCursor(cursor int64) int64 {
	if cursor < 0 {
		return 0
	}
	return cursor
}

// OffsetPage returns the records whose rank by ascending id lies in
// [offset, offset+limit), plus continuation metadata.
//
// The total count is a separate full-table query, intentionally not
// transactionally linked to the page fetch: it may reflect a different
// point in time, and it is O(n) on large tables. Both are accepted
// trade-offs of this strategy.
func (s *PageService) OffsetPage(ctx context.Context, limit, offset int) (*OffsetPage, error) {
	limit = NormalizeLimit(limit)
	offset = NormalizeOffset(offset)

	repo := s.repomanager.Records(s.db)

	recs, err := repo.SelectPage(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("selecting page: %w", err)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting records: %w", err)
	}

	entries := make([]FormattedRecord, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, formatRecord(r))
	}

	return &OffsetPage{
		Entries: entries,
		Pagination: OffsetMeta{
			TotalRecords: total,
			Limit:        limit,
			Offset:       offset,
			NextPage:     limit + offset,
		},
	}, nil
}

// CursorPage returns up to limit records with id strictly greater than
// cursor, ordered by ascending id, plus continuation metadata. The same
// count staleness caveat as OffsetPage applies.
func (s *PageService) CursorPage(ctx context.Context, limit int, cursor int64) (*CursorPage, error) {
	limit = NormalizeLimit(limit)
	cursor = NormalizeCursor(cursor)

	repo := s.repomanager.Records(s.db)

	recs, err := repo.SelectAfter(ctx, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("selecting after cursor: %w", err)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting records: %w", err)
	}

	// rows come back ordered by id, so the continuation cursor is the last
	// id; an empty page echoes the input cursor instead of faulting
	next := cursor
	if len(recs) > 0 {
		next = recs[len(recs)-1].ID
	}

	entries := make([]FormattedRecord, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, formatRecord(r))
	}

	return &CursorPage{
		Entries: entries,
		Pagination: CursorMeta{
			TotalRecords: total,
			Limit:        limit,
			Cursor:       next,
		},
	}, nil
}
