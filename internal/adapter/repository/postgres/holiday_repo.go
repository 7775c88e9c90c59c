package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// HolidayRepository implements usecase.HolidayRepository.
type HolidayRepository struct {
	db DBTX
}

// NewHolidayRepository creates a new HolidayRepository.
func NewHolidayRepository(db DBTX) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// GetByDay returns the holiday on day, or nil when day is not a holiday.
func (r *HolidayRepository) GetByDay(ctx context.Context, category string, day time.Time) (*domain.Holiday, error) {
	query := `SELECT id, category, day, name FROM holidays WHERE category = $1 AND day = $2`

	h, err := scanHoliday(r.db.QueryRow(ctx, query, category, dayToDate(day)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return h, err
}

// FindByYear returns a year's holidays ordered by day.
func (r *HolidayRepository) FindByYear(ctx context.Context, category string, year int) ([]*domain.Holiday, error) {
	query := `
		SELECT id, category, day, name
		FROM holidays
		WHERE category = $1 AND day >= $2 AND day < $3
		ORDER BY day
	`

	from := domain.NewDay(year, time.January, 1)
	rows, err := r.db.Query(ctx, query, category, dayToDate(from), dayToDate(from.AddDate(1, 0, 0)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}

	return items, rows.Err()
}

// ReplaceYear deletes a year's holidays and inserts items in their place.
func (r *HolidayRepository) ReplaceYear(ctx context.Context, tx usecase.Transaction, category string, year int, items []*domain.Holiday) error {
	q, err := pgxTx(tx)
	if err != nil {
		return err
	}

	from := domain.NewDay(year, time.January, 1)
	_, err = q.Exec(ctx, `DELETE FROM holidays WHERE category = $1 AND day >= $2 AND day < $3`,
		category, dayToDate(from), dayToDate(from.AddDate(1, 0, 0)))
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, h := range items {
		batch.Queue(`INSERT INTO holidays (id, category, day, name) VALUES ($1, $2, $3, $4)`,
			h.ID, h.Category, dayToDate(h.Day), h.Name)
	}

	return mapWriteError(q.SendBatch(ctx, batch).Close())
}

func scanHoliday(row pgx.Row) (*domain.Holiday, error) {
	var (
		h   domain.Holiday
		day pgtype.Date
	)

	if err := row.Scan(&h.ID, &h.Category, &day, &h.Name); err != nil {
		return nil, err
	}

	h.Day = dateToDay(day)
	return &h, nil
}
