package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nextplay/internal/auth"
	"nextplay/internal/client/freetogame"
	"nextplay/internal/models"
	"nextplay/internal/service"
)

// APIClient talks to the nextplay server on behalf of one user.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	userID     string
}

func NewAPIClient(baseURL, userID string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userID:     userID,
	}
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set(auth.DefaultUserHeader, c.userID)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(payload, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(payload, out)
}

func (c *APIClient) Games(ctx context.Context, platform, category, sortBy string) ([]freetogame.Game, error) {
	query := url.Values{}
	if platform != "" {
		query.Set("platform", platform)
	}
	if category != "" {
		query.Set("category", category)
	}
	if sortBy != "" {
		query.Set("sort-by", sortBy)
	}
	var games []freetogame.Game
	if err := c.do(ctx, http.MethodGet, "/api/games", query, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *APIClient) Trending(ctx context.Context, page int, q string) (*service.TrendingPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	if q != "" {
		query.Set("q", q)
	}
	var out service.TrendingPage
	if err := c.do(ctx, http.MethodGet, "/api/news/trending", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Favorites(ctx context.Context) ([]models.Favorite, error) {
	var out []models.Favorite
	if err := c.do(ctx, http.MethodGet, "/api/favorites", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) AddFavorite(ctx context.Context, in service.AddFavoriteInput) error {
	return c.do(ctx, http.MethodPost, "/api/favorites", nil, in, nil)
}

func (c *APIClient) RemoveFavorite(ctx context.Context, gameID int) error {
	return c.do(ctx, http.MethodDelete, "/api/favorites/"+strconv.Itoa(gameID), nil, nil, nil)
}
