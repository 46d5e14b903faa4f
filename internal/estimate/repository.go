package estimate

import (
	"context"
	"fmt"
	"sort"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository stores estimate records.
type Repository interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
}

// NotFoundError reports a missing estimate.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("estimate %q not found", e.ID)
}

// NewRecordRepository builds the go-repository-bun repository for estimates.
func NewRecordRepository(db *bun.DB) repository.Repository[*Record] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Record]{
		NewRecord: func() *Record { return &Record{} },
		GetID: func(r *Record) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Record, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(r *Record) string {
			return r.ID.String()
		},
	})
}

// BunRepository persists estimates with bun.
type BunRepository struct {
	repo repository.Repository[*Record]
}

var _ Repository = (*BunRepository)(nil)

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{repo: NewRecordRepository(db)}
}

func (r *BunRepository) Create(ctx context.Context, record *Record) (*Record, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("estimate repository create: %w", err)
	}
	return created, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("estimate repository get: %w", err)
	}
	return record, nil
}

func (r *BunRepository) List(ctx context.Context) ([]*Record, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.created_at DESC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("estimate repository list: %w", err)
	}
	return records, nil
}

// MemoryRepository keeps estimates in memory. Used in tests and when storage
// is disabled.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[uuid.UUID]*Record)}
}

func (m *MemoryRepository) Create(_ context.Context, record *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRecord(record)
	m.records[copied.ID] = copied
	return cloneRecord(copied), nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return cloneRecord(record), nil
}

func (m *MemoryRepository) List(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Record, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, cloneRecord(record))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func cloneRecord(src *Record) *Record {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Features = append([]string{}, src.Features...)
	return &copied
}
