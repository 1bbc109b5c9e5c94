package faqstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
)

type counter struct {
	count   int64
	display string
}

// MemoryStore keeps query counters in process memory. Counters reset on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[faq.Bucket]map[string]*counter
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[faq.Bucket]map[string]*counter)}
}

// IncrementQuery bumps the counter for a canonical query and records the first display string seen.
func (s *MemoryStore) IncrementQuery(_ context.Context, bucket faq.Bucket, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	counters, ok := s.buckets[bucket]
	if !ok {
		counters = make(map[string]*counter)
		s.buckets[bucket] = counters
	}
	c, ok := counters[canonical]
	if !ok {
		c = &counter{display: display}
		counters[canonical] = c
	}
	c.count++
	return nil
}

// TopQueries returns the most frequent queries of a bucket, ties ordered alphabetically.
func (s *MemoryStore) TopQueries(_ context.Context, bucket faq.Bucket, limit int) ([]faq.TrendingQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counters := s.buckets[bucket]
	if limit <= 0 {
		limit = len(counters)
	}
	items := make([]faq.TrendingQuery, 0, len(counters))
	for canonical, c := range counters {
		display := c.display
		if display == "" {
			display = canonical
		}
		items = append(items, faq.TrendingQuery{Query: display, Count: c.count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Query < items[j].Query
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ faq.Store = (*MemoryStore)(nil)
