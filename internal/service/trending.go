package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"nextplay/internal/apperr"
	"nextplay/internal/cache"
	"nextplay/internal/client/gnews"
	"nextplay/internal/config"
	"nextplay/internal/repository"
)

// TrendingService mirrors the external news search API as a paginated feed.
// The upstream has no page parameter, so the page index selects a search
// topic instead: topic = topics[page % len(topics)]. Pages for different
// topics can overlap; consumers deduplicate by article URL.
type TrendingService struct {
	Client   *gnews.Client
	Cache    cache.Store
	Repo     repository.Repository
	Logger   *zap.Logger
	APIKey   string
	Topics   []string
	PageSize int
	CacheTTL time.Duration
}

type TrendingQuery struct {
	Max   int
	Page  int
	Query string
}

type TrendingPage struct {
	TotalArticles int             `json:"totalArticles"`
	Articles      []gnews.Article `json:"articles"`
	Page          int             `json:"page"`
	HasMore       bool            `json:"hasMore"`
}

func (s *TrendingService) Fetch(ctx context.Context, q TrendingQuery) (*TrendingPage, error) {
	if strings.TrimSpace(s.APIKey) == "" {
		return nil, apperr.New(apperr.NotConfigured, "news API key not configured")
	}
	if q.Page < 0 {
		q.Page = 0
	}
	max := q.Max
	if max <= 0 {
		max = s.PageSize
	}
	if max <= 0 {
		max = 10
	}

	topics := s.Topics
	if len(topics) == 0 {
		topics = config.DefaultTopics
	}
	query := strings.TrimSpace(q.Query)
	if query == "" {
		query = topics[q.Page%len(topics)]
	}
	// The rotation is exhausted once the page index reaches the last topic.
	// An explicit query leaves the page counter on the same track.
	hasMore := q.Page < len(topics)-1

	key := fmt.Sprintf("trending?max=%d&page=%d&q=%s", max, q.Page, query)
	if s.Cache != nil {
		if raw, ok, err := s.Cache.Get(ctx, key); err == nil && ok {
			var page TrendingPage
			if err := json.Unmarshal(raw, &page); err == nil {
				return &page, nil
			}
		}
	}

	resp, err := s.Client.Search(ctx, query, max)
	recordSourceState(ctx, s.Repo, s.Logger, sourceScopeNews, map[string]any{
		"query": query,
		"page":  q.Page,
	}, err)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceUnavailable, "news fetch failed", err)
	}

	page := &TrendingPage{
		TotalArticles: resp.TotalArticles,
		Articles:      resp.Articles,
		Page:          q.Page,
		HasMore:       hasMore,
	}
	if page.Articles == nil {
		page.Articles = []gnews.Article{}
	}
	if s.Cache != nil {
		if raw, err := json.Marshal(page); err == nil {
			_ = s.Cache.Set(ctx, key, raw, s.CacheTTL)
		}
	}
	return page, nil
}
