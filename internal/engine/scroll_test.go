package engine

import (
	"testing"
	"time"
)

func TestScrollSaveRestore(t *testing.T) {
	s := NewScrollMemory()
	if !s.Save("/games", 1200) {
		t.Fatalf("first save must be recorded")
	}
	offset, ok := s.Restore("/games")
	if !ok || offset != 1200 {
		t.Fatalf("restore=(%d,%v) want (1200,true)", offset, ok)
	}

	if _, ok := s.Restore("/news"); ok {
		t.Fatalf("unseen route must not restore")
	}
}

func TestScrollZeroOffsetNotRestored(t *testing.T) {
	s := NewScrollMemory()
	s.Flush("/games", 0)
	if _, ok := s.Restore("/games"); ok {
		t.Fatalf("zero offset must not trigger restoration")
	}
}

func TestScrollSaveThrottled(t *testing.T) {
	s := NewScrollMemory()
	now := time.Unix(0, 0)
	s.now = func() time.Time { return now }

	if !s.Save("/games", 100) {
		t.Fatalf("first save dropped")
	}
	if s.Save("/games", 200) {
		t.Fatalf("save within the same frame must be dropped")
	}
	offset, _ := s.Restore("/games")
	if offset != 100 {
		t.Fatalf("offset=%d want 100", offset)
	}

	now = now.Add(saveInterval)
	if !s.Save("/games", 200) {
		t.Fatalf("save after a frame must be recorded")
	}
	offset, _ = s.Restore("/games")
	if offset != 200 {
		t.Fatalf("offset=%d want 200", offset)
	}
}

func TestScrollFlushBypassesThrottle(t *testing.T) {
	s := NewScrollMemory()
	now := time.Unix(0, 0)
	s.now = func() time.Time { return now }

	s.Save("/games", 100)
	s.Flush("/games", 340) // unmount: never dropped
	offset, _ := s.Restore("/games")
	if offset != 340 {
		t.Fatalf("offset=%d want 340", offset)
	}
}

func TestScrollRoutesIndependent(t *testing.T) {
	s := NewScrollMemory()
	s.Flush("/games", 500)
	s.Flush("/news", 80)

	if offset, _ := s.Restore("/games"); offset != 500 {
		t.Fatalf("games offset=%d want 500", offset)
	}
	if offset, _ := s.Restore("/news"); offset != 80 {
		t.Fatalf("news offset=%d want 80", offset)
	}
}

func TestRestoreSchedule(t *testing.T) {
	want := []time.Duration{0, 50 * time.Millisecond, 150 * time.Millisecond, 300 * time.Millisecond}
	if len(RestoreSchedule) != len(want) {
		t.Fatalf("schedule=%v want %v", RestoreSchedule, want)
	}
	for i := range want {
		if RestoreSchedule[i] != want[i] {
			t.Fatalf("schedule[%d]=%v want %v", i, RestoreSchedule[i], want[i])
		}
	}
	for i := 1; i < len(RestoreSchedule); i++ {
		if RestoreSchedule[i] <= RestoreSchedule[i-1] {
			t.Fatalf("schedule must be strictly increasing")
		}
	}
}
