package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/architectus/pkg/plan"
)

// MemoryStore keeps plans in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string]plan.Snapshot
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string]plan.Snapshot)}
}

func (m *MemoryStore) Save(_ context.Context, s *plan.Snapshot) (string, error) {
	if err := prepare(s); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[s.ID] = clone(s)
	return s.ID, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*plan.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.plans[id]
	if !ok {
		return nil, notFound(id)
	}
	c := clone(&s)
	return &c, nil
}

func (m *MemoryStore) List(_ context.Context, limit int) ([]*plan.Snapshot, error) {
	m.mu.RLock()
	out := make([]*plan.Snapshot, 0, len(m.plans))
	for _, s := range m.plans {
		c := clone(&s)
		out = append(out, &c)
	}
	m.mu.RUnlock()

	sortNewestFirst(out)
	return out[:min(len(out), listLimit(limit))], nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.plans, id)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// clone copies the floor and room slices so callers cannot alias stored data.
func clone(s *plan.Snapshot) plan.Snapshot {
	c := *s
	c.Floors = make([]plan.FloorSnapshot, len(s.Floors))
	for i, f := range s.Floors {
		c.Floors[i] = plan.FloorSnapshot{Number: f.Number, Rooms: slices.Clone(f.Rooms)}
	}
	return c
}

func sortNewestFirst(plans []*plan.Snapshot) {
	slices.SortFunc(plans, func(a, b *plan.Snapshot) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

var _ Store = (*MemoryStore)(nil)
