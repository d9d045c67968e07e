package engine

import (
	"sync"
	"time"
)

// ScrollMemory keeps a vertical scroll offset per route so revisiting a
// route (back navigation, tab switch) can land where the user left off.
// Callers must disable any competing native restoration.
type ScrollMemory struct {
	mu        sync.Mutex
	positions map[string]int
	lastSave  map[string]time.Time
	now       func() time.Time
}

// saveInterval throttles Save to roughly once per animation frame.
const saveInterval = 16 * time.Millisecond

// RestoreSchedule is the delay ladder for restoration attempts; later
// attempts tolerate async content growing the scrollable height after the
// first paint.
var RestoreSchedule = []time.Duration{
	0,
	50 * time.Millisecond,
	150 * time.Millisecond,
	300 * time.Millisecond,
}

func NewScrollMemory() *ScrollMemory {
	return &ScrollMemory{
		positions: make(map[string]int),
		lastSave:  make(map[string]time.Time),
		now:       time.Now,
	}
}

// Save records the offset for a route, dropping calls that arrive within
// the same frame. Returns whether the offset was recorded.
func (s *ScrollMemory) Save(route string, offset int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if last, ok := s.lastSave[route]; ok && now.Sub(last) < saveInterval {
		return false
	}
	s.lastSave[route] = now
	s.positions[route] = offset
	return true
}

// Flush records the offset unconditionally; used on unload and unmount
// where a throttled drop would lose the final position.
func (s *ScrollMemory) Flush(route string, offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSave[route] = s.now()
	s.positions[route] = offset
}

// Restore returns the saved offset for a route. Offsets of zero (or none)
// report false: only positive offsets warrant a restoration attempt.
func (s *ScrollMemory) Restore(route string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	offset, ok := s.positions[route]
	if !ok || offset <= 0 {
		return 0, false
	}
	return offset, true
}
