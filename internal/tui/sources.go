package tui

import (
	"context"
	"sync"

	"nextplay/internal/client/freetogame"
	"nextplay/internal/client/gnews"
	"nextplay/internal/engine"
)

// catalogSource pages through the catalog. The server returns the whole
// filtered list in one response, so the source fetches it once per
// fingerprint and slices pages of pageSize out of it.
type catalogSource struct {
	client   *APIClient
	pageSize int

	mu     sync.Mutex
	key    string
	cached []freetogame.Game
}

func newCatalogSource(client *APIClient, pageSize int) *catalogSource {
	if pageSize <= 0 {
		pageSize = 40
	}
	return &catalogSource{client: client, pageSize: pageSize}
}

func (s *catalogSource) FetchPage(ctx context.Context, fp engine.Fingerprint, page int) (engine.Page[freetogame.Game], error) {
	s.mu.Lock()
	cached := s.cached
	hit := s.key == fp.Key() && cached != nil
	s.mu.Unlock()

	if !hit {
		games, err := s.client.Games(ctx, fp.Platform, fp.Category, fp.SortBy)
		if err != nil {
			return engine.Page[freetogame.Game]{}, err
		}
		s.mu.Lock()
		s.key = fp.Key()
		s.cached = games
		cached = games
		s.mu.Unlock()
	}

	start := page * s.pageSize
	if start > len(cached) {
		start = len(cached)
	}
	end := start + s.pageSize
	if end > len(cached) {
		end = len(cached)
	}
	return engine.Page[freetogame.Game]{
		Items:   cached[start:end],
		HasMore: end < len(cached),
	}, nil
}

// trendingSource maps feed pages straight onto the server's topic
// rotation pages.
type trendingSource struct {
	client *APIClient
}

func (s *trendingSource) FetchPage(ctx context.Context, fp engine.Fingerprint, page int) (engine.Page[gnews.Article], error) {
	resp, err := s.client.Trending(ctx, page, fp.Search)
	if err != nil {
		return engine.Page[gnews.Article]{}, err
	}
	return engine.Page[gnews.Article]{
		Items:   resp.Articles,
		HasMore: resp.HasMore,
	}, nil
}
