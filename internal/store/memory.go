package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/patrickmn/go-cache"

	"github.com/roach88/lipsum/internal/ir"
)

// MemoryStore keeps records in process memory. Records are copied in and
// out so callers cannot mutate stored maps. Nothing expires.
type MemoryStore struct {
	records *cache.Cache
	delMu   sync.Mutex // makes Delete's check-then-remove atomic
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) Save(ctx context.Context, rec ir.Record) (string, error) {
	if err := ValidateID(rec.ID); err != nil {
		return "", fmt.Errorf("save mapping: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return "", fmt.Errorf("save mapping: %w", err)
	}
	s.records.Set(rec.ID, cloneRecord(rec), cache.NoExpiration)
	return "memory:" + rec.ID, nil
}

func (s *MemoryStore) Load(ctx context.Context, id string) (ir.Record, error) {
	v, ok := s.records.Get(id)
	if !ok {
		return ir.Record{}, fmt.Errorf("load mapping %s: %w", id, ErrNotFound)
	}
	return cloneRecord(v.(ir.Record)), nil
}

func (s *MemoryStore) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := s.records.Get(id)
	return ok, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.delMu.Lock()
	defer s.delMu.Unlock()
	if _, ok := s.records.Get(id); !ok {
		return fmt.Errorf("delete mapping %s: %w", id, ErrNotFound)
	}
	s.records.Delete(id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]ir.Record, error) {
	items := s.records.Items()
	recs := make([]ir.Record, 0, len(items))
	for _, item := range items {
		recs = append(recs, cloneRecord(item.Object.(ir.Record)))
	}
	sortRecords(recs)
	return recs, nil
}

func (s *MemoryStore) Close() error {
	s.records.Flush()
	return nil
}
