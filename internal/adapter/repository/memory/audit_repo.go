package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/iho/cashledger/internal/domain"
)

// AuditRepository implements usecase.AuditRepository. Writes are immediate.
type AuditRepository struct {
	store *Store
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(store *Store) *AuditRepository {
	return &AuditRepository{store: store}
}

// Create inserts a record.
func (r *AuditRepository) Create(ctx context.Context, record *domain.AuditRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.audits[record.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.store.audits[record.ID] = clone(record)
	return nil
}

// Update replaces a record.
func (r *AuditRepository) Update(ctx context.Context, record *domain.AuditRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.audits[record.ID]; !ok {
		return domain.ErrAuditRecordNotFound
	}
	r.store.audits[record.ID] = clone(record)
	return nil
}

// GetByID returns a record.
func (r *AuditRepository) GetByID(ctx context.Context, id string) (*domain.AuditRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.audits[id]
	if !ok {
		return nil, domain.ErrAuditRecordNotFound
	}
	return clone(rec), nil
}

// Find returns records matching filter, newest first.
func (r *AuditRepository) Find(ctx context.Context, filter domain.AuditFilter, page domain.Pagination) (*domain.PagingList[*domain.AuditRecord], error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	keyword := strings.ToLower(filter.Keyword)
	items := collect(r.store.audits, func(a *domain.AuditRecord) bool {
		if filter.Kind != "" && a.Kind != filter.Kind {
			return false
		}
		if filter.Category != "" && a.Category != filter.Category {
			return false
		}
		if filter.Status != "" && a.Status != filter.Status {
			return false
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(a.Message), keyword) &&
			!strings.Contains(strings.ToLower(a.ActorID), keyword) {
			return false
		}
		if filter.FromDay != nil && a.StartedAt.Before(domain.TruncateDay(*filter.FromDay)) {
			return false
		}
		if filter.ToDay != nil && a.StartedAt.After(domain.DayTo(*filter.ToDay)) {
			return false
		}
		return true
	})
	sort.Slice(items, func(i, j int) bool {
		if items[i].StartedAt.Equal(items[j].StartedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].StartedAt.After(items[j].StartedAt)
	})
	return paginate(items, page), nil
}
