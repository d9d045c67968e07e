package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nextplay/internal/apperr"
	"nextplay/internal/db"
	"nextplay/internal/models"
	"nextplay/internal/repository"
)

// FavoritesService manages per-user saved games. Entries carry a snapshot of
// the game at favoriting time so they survive upstream catalog changes.
// Duplicate detection relies on the store's (user, game) unique constraint.
type FavoritesService struct {
	Repo repository.Repository
}

type AddFavoriteInput struct {
	GameID        int    `json:"game_id"`
	GameTitle     string `json:"game_title"`
	GameThumbnail string `json:"game_thumbnail"`
	GameGenre     string `json:"game_genre"`
	GamePlatform  string `json:"game_platform"`
}

func (s *FavoritesService) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	items, err := s.Repo.ListFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Favorite{}
	}
	return items, nil
}

func (s *FavoritesService) Add(ctx context.Context, userID string, in AddFavoriteInput) (*models.Favorite, error) {
	if in.GameID <= 0 || strings.TrimSpace(in.GameTitle) == "" {
		return nil, apperr.New(apperr.ValidationFailed, "game id and title are required")
	}

	item := &models.Favorite{
		ID:            uuid.NewString(),
		UserID:        userID,
		GameID:        in.GameID,
		GameTitle:     in.GameTitle,
		GameThumbnail: in.GameThumbnail,
		GameGenre:     in.GameGenre,
		GamePlatform:  in.GamePlatform,
		CreatedAt:     db.NowUTC(),
	}
	if err := s.Repo.InsertFavorite(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Wrap(apperr.Conflict, "game already in favorites", err)
		}
		return nil, err
	}
	return item, nil
}

func (s *FavoritesService) Remove(ctx context.Context, userID string, gameID int) error {
	if gameID <= 0 {
		return apperr.New(apperr.ValidationFailed, "game id is required")
	}
	_, err := s.Repo.DeleteFavorite(ctx, userID, gameID)
	return err
}
