package repository

import (
	"context"
	"sync"

	"github.com/formdrop/formdrop/internal/record"
)

// Repository persists records. Implementations report
// database.ErrNotConnected when their backing store is unavailable.
type Repository interface {
	Insert(ctx context.Context, r *record.Record) error
	FindAll(ctx context.Context) ([]record.Document, error)
}

// MemoryRepo is an in-memory repository used by tests and by local runs
// without a database.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []record.Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Insert(_ context.Context, r *record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, *r)
	return nil
}

// FindAll returns records in insertion order.
func (m *MemoryRepo) FindAll(_ context.Context) ([]record.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]record.Document, len(m.records))
	for i, r := range m.records {
		out[i] = r.Document()
	}
	return out, nil
}

// Len reports how many records are stored.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
