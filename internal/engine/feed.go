// Package engine implements the browse pipeline used by list views: an
// accumulating, deduplicating page feed, the windowed row layout over it,
// and per-route scroll position memory.
package engine

import (
	"context"
	"strings"
	"sync"

	"nextplay/internal/apperr"
)

// Fingerprint is the tuple of active filter parameters. Any component change
// invalidates the accumulated feed, including the search text even though it
// is only applied client-side.
type Fingerprint struct {
	Platform string
	Category string
	SortBy   string
	Search   string
}

func (f Fingerprint) Key() string {
	return strings.Join([]string{f.Platform, f.Category, f.SortBy, f.Search}, "\x1f")
}

// Page is one upstream page. HasMore is the source's explicit continuation
// signal; the feed never infers it from page length.
type Page[T any] struct {
	Items   []T
	HasMore bool
}

type Source[T any] interface {
	FetchPage(ctx context.Context, fp Fingerprint, page int) (Page[T], error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func(ctx context.Context, fp Fingerprint, page int) (Page[T], error)

func (f SourceFunc[T]) FetchPage(ctx context.Context, fp Fingerprint, page int) (Page[T], error) {
	return f(ctx, fp, page)
}

// Feed accumulates pages from a source into a single deduplicated sequence.
// Records keep the position and data of their first occurrence; later
// duplicates are dropped, never merged in place.
type Feed[T any] struct {
	source Source[T]
	keyOf  func(T) string

	mu          sync.Mutex
	fingerprint Fingerprint
	generation  uint64
	items       []T
	seen        map[string]struct{}
	page        int
	hasMore     bool
	inFlight    bool
	loadErr     error
	loaded      bool
}

func NewFeed[T any](source Source[T], keyOf func(T) string) *Feed[T] {
	return &Feed[T]{
		source:  source,
		keyOf:   keyOf,
		seen:    make(map[string]struct{}),
		hasMore: true,
	}
}

// ResetForFilters drops all accumulated state and supersedes any in-flight
// load. It never fetches.
func (f *Feed[T]) ResetForFilters(fp Fingerprint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fingerprint = fp
	f.generation++
	f.items = nil
	f.seen = make(map[string]struct{})
	f.page = 0
	f.hasMore = true
	f.inFlight = false
	f.loadErr = nil
	f.loaded = false
}

// LoadNextPage fetches and merges the next page for the current fingerprint.
// A call while a load is already pending is a no-op, as is a call once the
// source reported the end. A response arriving after ResetForFilters
// superseded its fingerprint is discarded without touching state.
func (f *Feed[T]) LoadNextPage(ctx context.Context) error {
	f.mu.Lock()
	if f.inFlight || !f.hasMore {
		f.mu.Unlock()
		return nil
	}
	gen := f.generation
	fp := f.fingerprint
	page := f.page
	f.inFlight = true
	f.loadErr = nil
	f.mu.Unlock()

	result, err := f.source.FetchPage(ctx, fp, page)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generation != gen {
		// Stale response for a superseded fingerprint.
		return nil
	}
	f.inFlight = false
	if err != nil {
		f.loadErr = apperr.Wrap(apperr.SourceUnavailable, "page load failed", err)
		return f.loadErr
	}
	for _, item := range result.Items {
		key := f.keyOf(item)
		if _, dup := f.seen[key]; dup {
			continue
		}
		f.seen[key] = struct{}{}
		f.items = append(f.items, item)
	}
	f.page++
	f.hasMore = result.HasMore
	f.loaded = true
	return nil
}

// Items returns a snapshot of the accumulated sequence.
func (f *Feed[T]) Items() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]T, len(f.items))
	copy(out, f.items)
	return out
}

// Filtered is a pure derived view over the accumulated sequence; it never
// affects pagination state or triggers fetches.
func (f *Feed[T]) Filtered(pred func(T) bool) []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	if pred == nil {
		out := make([]T, len(f.items))
		copy(out, f.items)
		return out
	}
	out := make([]T, 0, len(f.items))
	for _, item := range f.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func (f *Feed[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *Feed[T]) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

func (f *Feed[T]) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

// Err reports the last failed load for the current fingerprint. Together
// with Len and Loaded it distinguishes "empty + error" from "empty + no
// results" and from "still loading".
func (f *Feed[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadErr
}

// Loaded reports whether at least one page merged successfully since the
// last reset.
func (f *Feed[T]) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded
}

// Fingerprint returns the active filter context.
func (f *Feed[T]) Fingerprint() Fingerprint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fingerprint
}
