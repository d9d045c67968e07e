package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nextplay/internal/apperr"
	"nextplay/internal/cache"
	"nextplay/internal/client/freetogame"
)

func TestCatalogListCachesUpstream(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`[{"id":1,"title":"Alpha"},{"id":2,"title":"Beta"}]`))
	}))
	defer srv.Close()

	svc := &CatalogService{
		Client:   freetogame.NewClient(srv.Client(), srv.URL),
		Cache:    cache.NewMemory(),
		CacheTTL: time.Hour,
	}
	ctx := context.Background()

	games, err := svc.List(ctx, freetogame.Query{Platform: "pc"})
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len=%d want 2", len(games))
	}

	if _, err := svc.List(ctx, freetogame.Query{Platform: "pc"}); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if hits != 1 {
		t.Fatalf("hits=%d, second identical query must be served from cache", hits)
	}

	// A different filter fingerprint is a different cache entry.
	if _, err := svc.List(ctx, freetogame.Query{Platform: "browser"}); err != nil {
		t.Fatalf("third list: %v", err)
	}
	if hits != 2 {
		t.Fatalf("hits=%d want 2", hits)
	}
}

func TestCatalogListUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := &CatalogService{
		Client:   freetogame.NewClient(srv.Client(), srv.URL),
		Cache:    cache.NewMemory(),
		CacheTTL: time.Hour,
	}
	_, err := svc.List(context.Background(), freetogame.Query{})
	if apperr.KindOf(err) != apperr.SourceUnavailable {
		t.Fatalf("kind=%v want SourceUnavailable", apperr.KindOf(err))
	}
}

func TestCatalogGetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such game", http.StatusNotFound)
	}))
	defer srv.Close()

	svc := &CatalogService{
		Client:   freetogame.NewClient(srv.Client(), srv.URL),
		CacheTTL: time.Hour,
	}
	_, err := svc.Get(context.Background(), 999999)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("kind=%v want NotFound", apperr.KindOf(err))
	}

	_, err = svc.Get(context.Background(), 0)
	if apperr.KindOf(err) != apperr.ValidationFailed {
		t.Fatalf("kind=%v want ValidationFailed for id 0", apperr.KindOf(err))
	}
}
