package gormrepository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nextplay/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- favorites --------------------------------------------------------------

func (s *Store) InsertFavorite(ctx context.Context, item *models.Favorite) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeleteFavorite(ctx context.Context, userID string, gameID int) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("game_id = ?", gameID).
		Delete(&models.Favorite{})
	return res.RowsAffected, res.Error
}

// --- community news ---------------------------------------------------------

func (s *Store) InsertCommunityNews(ctx context.Context, item *models.CommunityNews) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListCommunityNews(ctx context.Context) ([]models.CommunityNews, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.CommunityNews
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetCommunityNewsByID(ctx context.Context, id string) (*models.CommunityNews, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.CommunityNews
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpdateCommunityNews(ctx context.Context, item *models.CommunityNews) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.CommunityNews{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"title":      item.Title,
			"content":    item.Content,
			"image_url":  item.ImageURL,
			"updated_at": item.UpdatedAt,
		}).Error
}

func (s *Store) DeleteCommunityNews(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CommunityNews{}).Error
}

// --- source state -----------------------------------------------------------

func (s *Store) UpsertSourceState(ctx context.Context, state *models.SourceState) error {
	if s == nil || s.db == nil || state == nil {
		return nil
	}
	// A failed attempt must not blank out the last-known-good columns, so
	// only the fields this outcome actually produced are assigned.
	cols := []string{"last_attempt_at", "last_error"}
	if state.LastSuccessAt != nil {
		cols = append(cols, "last_success_at", "stats_json")
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}},
			DoUpdates: clause.AssignmentColumns(cols),
		}).
		Create(state).Error
}

func (s *Store) ListSourceStates(ctx context.Context) ([]models.SourceState, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var states []models.SourceState
	if err := s.db.WithContext(ctx).Order("scope ASC").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}
