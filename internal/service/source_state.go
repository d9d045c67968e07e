package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"nextplay/internal/models"
	"nextplay/internal/repository"
)

// recordSourceState persists fetch bookkeeping for one upstream scope.
// Best-effort: a bookkeeping failure never fails the request that
// triggered it.
func recordSourceState(ctx context.Context, repo repository.Repository, logger *zap.Logger, scope string, stats map[string]any, fetchErr error) {
	if repo == nil {
		return
	}
	now := time.Now().UTC()
	state := &models.SourceState{
		Scope:         scope,
		LastAttemptAt: &now,
	}
	if fetchErr != nil {
		msg := fetchErr.Error()
		state.LastError = &msg
	} else {
		state.LastSuccessAt = &now
	}
	if stats != nil {
		if raw, err := json.Marshal(stats); err == nil {
			state.StatsJSON = datatypes.JSON(raw)
		}
	}
	if err := repo.UpsertSourceState(ctx, state); err != nil && logger != nil {
		logger.Debug("source state upsert failed", zap.String("scope", scope), zap.Error(err))
	}
}
