package repository

import (
	"context"

	"nextplay/internal/models"
)

type Repository interface {
	// Favorites. Insert surfaces gorm.ErrDuplicatedKey for the
	// (user, game) unique constraint; callers translate that to Conflict.
	InsertFavorite(ctx context.Context, item *models.Favorite) error
	ListFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	DeleteFavorite(ctx context.Context, userID string, gameID int) (int64, error)

	// Community news.
	InsertCommunityNews(ctx context.Context, item *models.CommunityNews) error
	ListCommunityNews(ctx context.Context) ([]models.CommunityNews, error)
	GetCommunityNewsByID(ctx context.Context, id string) (*models.CommunityNews, error)
	UpdateCommunityNews(ctx context.Context, item *models.CommunityNews) error
	DeleteCommunityNews(ctx context.Context, id string) error

	// Upstream fetch bookkeeping.
	UpsertSourceState(ctx context.Context, state *models.SourceState) error
	ListSourceStates(ctx context.Context) ([]models.SourceState, error)
}
