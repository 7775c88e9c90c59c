// Package memory is an in-process Ledger Store.
//
// Writes are applied to the shared tables immediately and undone on
// Rollback, so a transaction reads its own writes. There is no isolation
// between concurrent transactions beyond what the account locks provide.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/usecase"
)

// ErrForeignTransaction is returned when a repository receives a transaction
// that was not started by this package.
var ErrForeignTransaction = errors.New("memory: transaction not started by memory store")

// ErrTxDone is returned when committing a finished transaction.
var ErrTxDone = errors.New("memory: transaction already committed or rolled back")

// Store holds every table of the ledger.
type Store struct {
	mu sync.RWMutex

	balances       map[string]*domain.CashBalance
	cashflows      map[string]*domain.Cashflow
	withdrawals    map[string]*domain.Withdrawal
	holidays       map[string]*domain.Holiday
	settings       map[string]*domain.AppSetting
	fiAccounts     map[string]*domain.FiAccount
	selfFiAccounts map[string]*domain.SelfFiAccount
	audits         map[string]*domain.AuditRecord
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		balances:       make(map[string]*domain.CashBalance),
		cashflows:      make(map[string]*domain.Cashflow),
		withdrawals:    make(map[string]*domain.Withdrawal),
		holidays:       make(map[string]*domain.Holiday),
		settings:       make(map[string]*domain.AppSetting),
		fiAccounts:     make(map[string]*domain.FiAccount),
		selfFiAccounts: make(map[string]*domain.SelfFiAccount),
		audits:         make(map[string]*domain.AuditRecord),
	}
}

// TxManager implements usecase.TransactionManager.
type TxManager struct {
	store *Store
}

// NewTxManager creates a new TxManager.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Begin starts a new transaction.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Tx{store: m.store}, nil
}

// Tx records undo actions for the writes made through it.
type Tx struct {
	store *Store
	mu    sync.Mutex
	undo  []func()
	done  bool
}

// Commit keeps the writes.
func (t *Tx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return ErrTxDone
	}
	t.done = true
	t.undo = nil
	return nil
}

// Rollback reverts the writes. Rolling back a finished transaction is a no-op.
func (t *Tx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return nil
	}
	t.done = true
	undo := t.undo
	t.undo = nil
	t.mu.Unlock()

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
	return nil
}

func (t *Tx) record(undo func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undo = append(t.undo, undo)
}

func asTx(tx usecase.Transaction) (*Tx, error) {
	t, ok := tx.(*Tx)
	if !ok || t == nil {
		return nil, ErrForeignTransaction
	}
	if t.done {
		return nil, ErrTxDone
	}
	return t, nil
}

// write stores a copy of v under id, or deletes id when v is nil, and
// registers the inverse on tx. The caller must hold s.mu.
func write[T any](tx *Tx, rows map[string]*T, id string, v *T) {
	prev, existed := rows[id]
	if v == nil {
		delete(rows, id)
	} else {
		c := *v
		rows[id] = &c
	}
	tx.record(func() {
		if existed {
			rows[id] = prev
		} else {
			delete(rows, id)
		}
	})
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func collect[T any](rows map[string]*T, match func(*T) bool) []*T {
	var out []*T
	for _, v := range rows {
		if match(v) {
			out = append(out, clone(v))
		}
	}
	return out
}

func sortByID[T any](items []*T, id func(*T) string) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

func paginate[T any](items []*T, page domain.Pagination) *domain.PagingList[*T] {
	page = page.Normalize()
	page.Total = int64(len(items))

	start := page.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}

	return &domain.PagingList[*T]{Items: items[start:end], Page: page}
}

func hasStatus(statuses []domain.ActionStatus, s domain.ActionStatus) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}
