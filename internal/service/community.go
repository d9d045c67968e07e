package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"nextplay/internal/apperr"
	"nextplay/internal/db"
	"nextplay/internal/models"
	"nextplay/internal/repository"
)

// CommunityService manages user-submitted news. Writes verify that the
// acting identity matches the stored owner before applying.
type CommunityService struct {
	Repo repository.Repository
}

type CommunityNewsInput struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	ImageURL   *string `json:"image_url"`
	AuthorName string  `json:"author_name"`
}

type UpdateCommunityNewsInput struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
}

func (s *CommunityService) List(ctx context.Context) ([]models.CommunityNews, error) {
	items, err := s.Repo.ListCommunityNews(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CommunityNews{}
	}
	return items, nil
}

func (s *CommunityService) Create(ctx context.Context, userID string, in CommunityNewsInput) (*models.CommunityNews, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, apperr.New(apperr.ValidationFailed, "title and content are required")
	}
	author := strings.TrimSpace(in.AuthorName)
	if author == "" {
		author = "Anonymous"
	}
	now := db.NowUTC()
	item := &models.CommunityNews{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      in.Title,
		Content:    in.Content,
		ImageURL:   in.ImageURL,
		AuthorName: author,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.InsertCommunityNews(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CommunityService) Update(ctx context.Context, userID string, in UpdateCommunityNewsInput) (*models.CommunityNews, error) {
	if strings.TrimSpace(in.ID) == "" || strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, apperr.New(apperr.ValidationFailed, "id, title, and content are required")
	}
	existing, err := s.Repo.GetCommunityNewsByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.UserID != userID {
		return nil, apperr.New(apperr.Forbidden, "not authorized to edit this news")
	}

	existing.Title = in.Title
	existing.Content = in.Content
	existing.ImageURL = in.ImageURL
	existing.UpdatedAt = db.NowUTC()
	if err := s.Repo.UpdateCommunityNews(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CommunityService) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.New(apperr.ValidationFailed, "news id is required")
	}
	existing, err := s.Repo.GetCommunityNewsByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil || existing.UserID != userID {
		return apperr.New(apperr.Forbidden, "not authorized to delete this news")
	}
	return s.Repo.DeleteCommunityNews(ctx, id)
}
