package engine

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"nextplay/internal/apperr"
)

type record struct {
	id    int
	title string
}

func recordKey(r record) string {
	return strconv.Itoa(r.id)
}

func pagesSource(pages []Page[record]) Source[record] {
	return SourceFunc[record](func(_ context.Context, _ Fingerprint, page int) (Page[record], error) {
		if page >= len(pages) {
			return Page[record]{}, nil
		}
		return pages[page], nil
	})
}

func ids(items []record) []int {
	out := make([]int, len(items))
	for i, r := range items {
		out[i] = r.id
	}
	return out
}

func TestFeedDedupAcrossPages(t *testing.T) {
	feed := NewFeed(pagesSource([]Page[record]{
		{Items: []record{{id: 1}, {id: 2}, {id: 3}}, HasMore: true},
		{Items: []record{{id: 3}, {id: 4}, {id: 5}}, HasMore: false},
	}), recordKey)

	ctx := context.Background()
	if err := feed.LoadNextPage(ctx); err != nil {
		t.Fatalf("page 0: %v", err)
	}
	if err := feed.LoadNextPage(ctx); err != nil {
		t.Fatalf("page 1: %v", err)
	}

	got := ids(feed.Items())
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("items=%v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("items=%v want %v", got, want)
		}
	}
	if feed.HasMore() {
		t.Fatalf("hasMore should be false after the last page")
	}
}

func TestFeedDuplicateKeepsFirstOccurrence(t *testing.T) {
	feed := NewFeed(pagesSource([]Page[record]{
		{Items: []record{{id: 1, title: "original"}}, HasMore: true},
		{Items: []record{{id: 1, title: "rotated copy"}}, HasMore: false},
	}), recordKey)

	ctx := context.Background()
	_ = feed.LoadNextPage(ctx)
	_ = feed.LoadNextPage(ctx)

	items := feed.Items()
	if len(items) != 1 {
		t.Fatalf("len=%d want 1", len(items))
	}
	if items[0].title != "original" {
		t.Fatalf("title=%q, duplicate must not update in place", items[0].title)
	}
}

func TestFeedResetClearsState(t *testing.T) {
	feed := NewFeed(pagesSource([]Page[record]{
		{Items: []record{{id: 1}}, HasMore: false},
	}), recordKey)
	_ = feed.LoadNextPage(context.Background())
	if feed.Len() != 1 || feed.HasMore() {
		t.Fatalf("precondition failed: len=%d hasMore=%v", feed.Len(), feed.HasMore())
	}

	feed.ResetForFilters(Fingerprint{Platform: "pc"})
	if feed.Len() != 0 {
		t.Fatalf("len=%d want 0 after reset", feed.Len())
	}
	if !feed.HasMore() {
		t.Fatalf("hasMore must be true after reset, before any fetch")
	}
	if feed.Err() != nil || feed.Loaded() {
		t.Fatalf("reset must clear error and loaded flags")
	}
}

func TestFeedConcurrentLoadIsNoop(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int
	var mu sync.Mutex

	src := SourceFunc[record](func(_ context.Context, _ Fingerprint, page int) (Page[record], error) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			close(started)
			<-release
		}
		return Page[record]{Items: []record{{id: 10 + page}}, HasMore: true}, nil
	})
	feed := NewFeed[record](src, recordKey)

	done := make(chan error, 1)
	go func() { done <- feed.LoadNextPage(context.Background()) }()
	<-started

	// Second call while the first is suspended: no fetch, no cursor bump.
	if err := feed.LoadNextPage(context.Background()); err != nil {
		t.Fatalf("second call: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first call: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("calls=%d want 1", calls)
	}
	if feed.Len() != 1 {
		t.Fatalf("len=%d want 1", feed.Len())
	}
}

func TestFeedStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	src := SourceFunc[record](func(_ context.Context, fp Fingerprint, _ int) (Page[record], error) {
		if fp.Platform == "old" {
			once.Do(func() { close(started) })
			<-release
			return Page[record]{Items: []record{{id: 99}}, HasMore: true}, nil
		}
		return Page[record]{Items: []record{{id: 1}}, HasMore: false}, nil
	})
	feed := NewFeed[record](src, recordKey)
	feed.ResetForFilters(Fingerprint{Platform: "old"})

	done := make(chan error, 1)
	go func() { done <- feed.LoadNextPage(context.Background()) }()
	<-started

	// Filter changes while the old fetch is suspended.
	feed.ResetForFilters(Fingerprint{Platform: "new"})
	if err := feed.LoadNextPage(context.Background()); err != nil {
		t.Fatalf("new fingerprint load: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("stale load must not surface an error, got %v", err)
	}

	got := ids(feed.Items())
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("items=%v, stale page must not merge", got)
	}
}

func TestFeedFailureKeepsPartialState(t *testing.T) {
	var fail bool
	src := SourceFunc[record](func(_ context.Context, _ Fingerprint, page int) (Page[record], error) {
		if fail {
			return Page[record]{}, errors.New("upstream down")
		}
		return Page[record]{Items: []record{{id: page + 1}}, HasMore: true}, nil
	})
	feed := NewFeed[record](src, recordKey)

	ctx := context.Background()
	if err := feed.LoadNextPage(ctx); err != nil {
		t.Fatalf("page 0: %v", err)
	}

	fail = true
	err := feed.LoadNextPage(ctx)
	if err == nil {
		t.Fatalf("expected error")
	}
	if apperr.KindOf(err) != apperr.SourceUnavailable {
		t.Fatalf("kind=%v want SourceUnavailable", apperr.KindOf(err))
	}
	if feed.Len() != 1 {
		t.Fatalf("len=%d, accumulated state must survive a failed load", feed.Len())
	}
	if feed.Err() == nil {
		t.Fatalf("Err must report the failed load")
	}

	// The failed page was not consumed; a retry continues from it.
	fail = false
	if err := feed.LoadNextPage(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if feed.Len() != 2 {
		t.Fatalf("len=%d want 2 after retry", feed.Len())
	}
}

func TestFeedFirstPageFailureIsEmptyPlusError(t *testing.T) {
	src := SourceFunc[record](func(_ context.Context, _ Fingerprint, _ int) (Page[record], error) {
		return Page[record]{}, errors.New("down")
	})
	feed := NewFeed[record](src, recordKey)

	if err := feed.LoadNextPage(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if feed.Len() != 0 || feed.Err() == nil || feed.Loaded() {
		t.Fatalf("want empty+error: len=%d err=%v loaded=%v", feed.Len(), feed.Err(), feed.Loaded())
	}
}

func TestFeedEmptyResultWithoutErrorIsTerminal(t *testing.T) {
	src := pagesSource([]Page[record]{{Items: nil, HasMore: false}})
	feed := NewFeed(src, recordKey)

	if err := feed.LoadNextPage(context.Background()); err != nil {
		t.Fatalf("err=%v", err)
	}
	if feed.Len() != 0 || feed.Err() != nil || !feed.Loaded() || feed.HasMore() {
		t.Fatalf("want empty+done: len=%d err=%v loaded=%v hasMore=%v",
			feed.Len(), feed.Err(), feed.Loaded(), feed.HasMore())
	}
}

func TestFilteredIsPure(t *testing.T) {
	feed := NewFeed(pagesSource([]Page[record]{
		{Items: []record{
			{id: 1, title: "Star Conflict"},
			{id: 2, title: "War Thunder"},
			{id: 3, title: "Starbreak"},
		}, HasMore: false},
	}), recordKey)
	_ = feed.LoadNextPage(context.Background())

	pred := func(r record) bool { return strings.Contains(strings.ToLower(r.title), "star") }
	first := feed.Filtered(pred)
	second := feed.Filtered(pred)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("len=%d/%d want 2", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("filtered view not stable: %v vs %v", first, second)
		}
	}
	if feed.Len() != 3 {
		t.Fatalf("filter must not touch the accumulated sequence")
	}
}

func TestFingerprintKeyDistinguishesComponents(t *testing.T) {
	a := Fingerprint{Platform: "pc", Category: "mmo"}
	b := Fingerprint{Platform: "pc", Category: "", Search: "mmo"}
	if a.Key() == b.Key() {
		t.Fatalf("distinct fingerprints must have distinct keys")
	}
	if a.Key() != (Fingerprint{Platform: "pc", Category: "mmo"}).Key() {
		t.Fatalf("equal fingerprints must have equal keys")
	}
}
