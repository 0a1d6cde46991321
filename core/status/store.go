package status

import (
	"sort"
	"sync"
)

// LastAssignment mirrors the most recent dispatch decision for a unit.
type LastAssignment struct {
	MissionID string  `json:"mission_id"`
	Kind      string  `json:"kind"`
	PayloadKg float64 `json:"payload_kg"`
	Cycle     int     `json:"cycle"`
}

// Status captures the current known state of a unit.
type Status struct {
	UnitID         string         `json:"unit_id"`
	Variant        string         `json:"variant"`
	Location       string         `json:"location"`
	Busy           bool           `json:"busy"`
	Detail         string         `json:"detail"`
	LastAssignment LastAssignment `json:"last_assignment"`
}

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	Variant  string
	Location string
}

// Store keeps the latest status per unit.
type Store interface {
	Set(Status)
	Get(id string) (Status, bool)
	List(Filter) []Status
	RecordAssignment(id string, a LastAssignment)
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Status
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]Status{}}
}

func (s *MemoryStore) Set(st Status) {
	s.mu.Lock()
	s.data[st.UnitID] = st
	s.mu.Unlock()
}

func (s *MemoryStore) Get(id string) (Status, bool) {
	s.mu.RLock()
	st, ok := s.data[id]
	s.mu.RUnlock()
	return st, ok
}

func (s *MemoryStore) RecordAssignment(id string, a LastAssignment) {
	s.mu.Lock()
	st := s.data[id]
	if st.UnitID == "" {
		st.UnitID = id
	}
	st.LastAssignment = a
	st.Busy = true
	s.data[id] = st
	s.mu.Unlock()
}

func (s *MemoryStore) List(f Filter) []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]Status, 0, len(s.data))
	for _, st := range s.data {
		if f.Variant != "" && st.Variant != f.Variant {
			continue
		}
		if f.Location != "" && st.Location != f.Location {
			continue
		}
		res = append(res, st)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].UnitID < res[j].UnitID })
	return res
}
