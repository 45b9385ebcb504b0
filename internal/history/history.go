// Package history keeps a short per-user log of past scan findings and
// plans, used only as context for personalized narrative generation. Each
// user holds at most Capacity entries; older ones are dropped on append.
package history

import "sync"

type Entry struct {
	Findings string
	Plan     string
}

const DefaultCapacity = 3

type Store struct {
	mu     sync.Mutex
	byUser map[string][]Entry
	cap    int
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		byUser: make(map[string][]Entry),
		cap:    capacity,
	}
}

func (s *Store) Append(userID string, e Entry) {
	if userID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append(s.byUser[userID], e)
	if len(entries) > s.cap {
		entries = entries[len(entries)-s.cap:]
	}
	s.byUser[userID] = entries
}

// Recent returns the stored entries oldest first. The slice is a copy.
func (s *Store) Recent(userID string) []Entry {
	if userID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.byUser[userID]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
