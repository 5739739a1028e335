package memstore

import (
	"fmt"
	"sort"
	"sync"

	"textsum/internal/domain"
)

// MemoryStore keeps summary records in memory.
type MemoryStore struct {
	mu        sync.RWMutex
	summaries map[string]domain.SummaryRecord
	paths     map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		summaries: make(map[string]domain.SummaryRecord),
		paths:     make(map[string]string),
	}
}

func (s *MemoryStore) PutSummary(rec domain.SummaryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.paths[rec.Path]; ok && old != rec.ID {
		delete(s.summaries, old)
	}
	s.summaries[rec.ID] = rec
	s.paths[rec.Path] = rec.ID
	return nil
}

func (s *MemoryStore) GetSummary(id string) (domain.SummaryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.summaries[id]
	if !ok {
		return domain.SummaryRecord{}, fmt.Errorf("summary %s: %w", id, domain.ErrNotFound)
	}
	return rec, nil
}

func (s *MemoryStore) GetSummaryByPath(path string) (domain.SummaryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.paths[path]
	if !ok {
		return domain.SummaryRecord{}, fmt.Errorf("summary for %s: %w", path, domain.ErrNotFound)
	}
	return s.summaries[id], nil
}

func (s *MemoryStore) DeleteSummary(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.summaries[id]
	if !ok {
		return nil
	}
	if s.paths[rec.Path] == id {
		delete(s.paths, rec.Path)
	}
	delete(s.summaries, id)
	return nil
}

// ListSummaries returns every record ordered by ID, matching BoltStore.
func (s *MemoryStore) ListSummaries() ([]domain.SummaryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]domain.SummaryRecord, 0, len(s.summaries))
	for _, rec := range s.summaries {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].ID < recs[j].ID
	})
	return recs, nil
}

// Clear removes all records.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries = make(map[string]domain.SummaryRecord)
	s.paths = make(map[string]string)
}

func (s *MemoryStore) Close() error {
	return nil
}
