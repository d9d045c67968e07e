package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"nextplay/internal/apperr"
	"nextplay/internal/cache"
	"nextplay/internal/client/freetogame"
	"nextplay/internal/repository"
)

const (
	sourceScopeCatalog = "catalog"
	sourceScopeNews    = "trending"
)

// CatalogService serves game listings from the upstream catalog through a
// bounded-TTL read-through cache. Text search never reaches this layer; it
// is a client-side filter over already-fetched records.
type CatalogService struct {
	Client   *freetogame.Client
	Cache    cache.Store
	Repo     repository.Repository
	Logger   *zap.Logger
	CacheTTL time.Duration
}

func catalogCacheKey(q freetogame.Query) string {
	params := url.Values{}
	if q.Platform != "" {
		params.Set("platform", q.Platform)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.SortBy != "" {
		params.Set("sort-by", q.SortBy)
	}
	return "games?" + params.Encode()
}

func (s *CatalogService) List(ctx context.Context, q freetogame.Query) ([]freetogame.Game, error) {
	key := catalogCacheKey(q)
	if s.Cache != nil {
		if raw, ok, err := s.Cache.Get(ctx, key); err == nil && ok {
			var games []freetogame.Game
			if err := json.Unmarshal(raw, &games); err == nil {
				return games, nil
			}
		}
	}

	games, err := s.Client.Games(ctx, q)
	recordSourceState(ctx, s.Repo, s.Logger, sourceScopeCatalog, map[string]any{
		"query": key,
		"count": len(games),
	}, err)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceUnavailable, "catalog fetch failed", err)
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(games); err == nil {
			if err := s.Cache.Set(ctx, key, raw, s.CacheTTL); err != nil && s.Logger != nil {
				s.Logger.Debug("catalog cache set failed", zap.Error(err))
			}
		}
	}
	return games, nil
}

func (s *CatalogService) Get(ctx context.Context, id int) (*freetogame.GameDetails, error) {
	if id <= 0 {
		return nil, apperr.New(apperr.ValidationFailed, "game id is required")
	}
	key := "game?id=" + strconv.Itoa(id)
	if s.Cache != nil {
		if raw, ok, err := s.Cache.Get(ctx, key); err == nil && ok {
			var details freetogame.GameDetails
			if err := json.Unmarshal(raw, &details); err == nil {
				return &details, nil
			}
		}
	}

	details, err := s.Client.Game(ctx, id)
	if err != nil {
		if apiErr, ok := err.(*freetogame.APIError); ok && apiErr.Status == http.StatusNotFound {
			return nil, apperr.Wrap(apperr.NotFound, "game not found", err)
		}
		return nil, apperr.Wrap(apperr.SourceUnavailable, "game fetch failed", err)
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(details); err == nil {
			_ = s.Cache.Set(ctx, key, raw, s.CacheTTL)
		}
	}
	return details, nil
}
