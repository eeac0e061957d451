package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pscheid92/historymap/internal/domain"
)

// MemoryStore is an in-memory RecordStore for tests and database-less
// development. It mirrors the Postgres upsert semantics: identity and
// CreatedAt of an existing row survive replacement.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*domain.RegionRecord
}

var _ domain.RecordStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*domain.RegionRecord)}
}

func recordKey(year int, regionName string) string {
	return fmt.Sprintf("%d|%s", year, regionName)
}

func (s *MemoryStore) Get(ctx context.Context, year int, regionName string) (*domain.RegionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[recordKey(year, regionName)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return copyRecord(record), nil
}

func (s *MemoryStore) Upsert(ctx context.Context, record *domain.RegionRecord) (*domain.RegionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := copyRecord(record)
	key := recordKey(record.Year, record.RegionName)

	if existing, ok := s.records[key]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}

	s.records[key] = stored
	return copyRecord(stored), nil
}

// copyRecord guards against callers mutating shared state through the
// returned pointer or the entries slice.
func copyRecord(record *domain.RegionRecord) *domain.RegionRecord {
	clone := *record
	if record.DiaryEntries != nil {
		clone.DiaryEntries = make([]domain.DiaryEntry, len(record.DiaryEntries))
		copy(clone.DiaryEntries, record.DiaryEntries)
	}
	return &clone
}
