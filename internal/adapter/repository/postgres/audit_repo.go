package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/cashledger/internal/domain"
)

const auditColumns = `id, kind, actor_id, role, source, category, message,
	status, error_reason, elapsed_ms, started_at, ended_at`

// AuditRepository implements usecase.AuditRepository. It writes through the
// pool so records commit independently of any business transaction.
type AuditRepository struct {
	db DBTX
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts a new audit record.
func (r *AuditRepository) Create(ctx context.Context, rec *domain.AuditRecord) error {
	query := `
		INSERT INTO audit_records (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		rec.ID,
		rec.Kind,
		rec.ActorID,
		rec.Role,
		rec.Source,
		rec.Category,
		rec.Message,
		rec.Status,
		rec.ErrorReason,
		rec.ElapsedMs,
		timeToPgTimestamptz(rec.StartedAt),
		timePtrToPgTimestamptz(rec.EndedAt),
	)

	return mapWriteError(err)
}

// Update stores the outcome of an audit record.
func (r *AuditRepository) Update(ctx context.Context, rec *domain.AuditRecord) error {
	query := `
		UPDATE audit_records
		SET status = $2, error_reason = $3, elapsed_ms = $4, ended_at = $5
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		rec.ID,
		rec.Status,
		rec.ErrorReason,
		rec.ElapsedMs,
		timePtrToPgTimestamptz(rec.EndedAt),
	)
	return expectOne(tag, err, domain.ErrAuditRecordNotFound)
}

// GetByID retrieves an audit record by ID.
func (r *AuditRepository) GetByID(ctx context.Context, id string) (*domain.AuditRecord, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_records WHERE id = $1`

	return scanAuditRecord(r.db.QueryRow(ctx, query, id))
}

// Find lists audit records matching filter, newest first.
func (r *AuditRepository) Find(ctx context.Context, filter domain.AuditFilter, page domain.Pagination) (*domain.PagingList[*domain.AuditRecord], error) {
	page = page.Normalize()

	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Kind != "" {
		where = append(where, "kind = "+arg(filter.Kind))
	}
	if filter.Category != "" {
		where = append(where, "category = "+arg(filter.Category))
	}
	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}
	if filter.Keyword != "" {
		p := arg("%" + filter.Keyword + "%")
		where = append(where, "(message ILIKE "+p+" OR actor_id ILIKE "+p+")")
	}
	if filter.FromDay != nil {
		where = append(where, "started_at >= "+arg(timeToPgTimestamptz(domain.TruncateDay(*filter.FromDay))))
	}
	if filter.ToDay != nil {
		where = append(where, "started_at <= "+arg(timeToPgTimestamptz(domain.DayTo(*filter.ToDay))))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM audit_records`+clause, args...).Scan(&page.Total); err != nil {
		return nil, err
	}

	query := `SELECT ` + auditColumns + ` FROM audit_records` + clause +
		` ORDER BY started_at DESC, id DESC LIMIT ` + arg(page.Size) + ` OFFSET ` + arg(page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.AuditRecord
	for rows.Next() {
		rec, err := scanAuditRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.PagingList[*domain.AuditRecord]{Items: items, Page: page}, nil
}

func scanAuditRecord(row pgx.Row) (*domain.AuditRecord, error) {
	var (
		rec                domain.AuditRecord
		startedAt, endedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&rec.ID,
		&rec.Kind,
		&rec.ActorID,
		&rec.Role,
		&rec.Source,
		&rec.Category,
		&rec.Message,
		&rec.Status,
		&rec.ErrorReason,
		&rec.ElapsedMs,
		&startedAt,
		&endedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAuditRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	rec.StartedAt = startedAt.Time
	rec.EndedAt = pgTimestamptzToTimePtr(endedAt)
	return &rec, nil
}
