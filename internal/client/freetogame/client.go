package freetogame

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type Client struct {
	host       string
	httpClient *http.Client
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Body)
}

func NewClient(httpClient *http.Client, host string) *Client {
	if host == "" {
		host = "https://www.freetogame.com/api"
	}
	host = strings.TrimRight(host, "/")
	return &Client{
		host:       host,
		httpClient: httpClient,
	}
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.host + path
	if len(query) > 0 {
		fullURL = fullURL + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// Games fetches the catalog, optionally filtered and sorted server-side.
func (c *Client) Games(ctx context.Context, q Query) ([]Game, error) {
	query := url.Values{}
	if q.Platform != "" {
		query.Set("platform", q.Platform)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.SortBy != "" {
		query.Set("sort-by", q.SortBy)
	}
	body, err := c.doRequest(ctx, "/games", query)
	if err != nil {
		return nil, err
	}
	var games []Game
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("failed to decode games: %w", err)
	}
	return games, nil
}

func (c *Client) Game(ctx context.Context, id int) (*GameDetails, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id is required")
	}
	query := url.Values{}
	query.Set("id", strconv.Itoa(id))
	body, err := c.doRequest(ctx, "/game", query)
	if err != nil {
		return nil, err
	}
	var details GameDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to decode game details: %w", err)
	}
	return &details, nil
}
