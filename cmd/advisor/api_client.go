package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dom/league-item-advisor/internal/recommend"
	"github.com/goccy/go-json"
)

// APIClient handles HTTP communication with the advisor server
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Recommend posts a raw allgamedata snapshot and decodes the ranking
func (c *APIClient) Recommend(gameState []byte) (*recommend.Recommendation, error) {
	resp, err := c.httpClient.Post(c.baseURL+"/recommendations/items", "application/json", bytes.NewReader(gameState))
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("recommendation failed (status %d): %s", resp.StatusCode, bytes.TrimSpace(bodyBytes))
	}

	var rec recommend.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &rec, nil
}

// Profile fetches the scaling profile preview for a champion
func (c *APIClient) Profile(championID string, level int, ad, ap float64) (*recommend.ChampionProfile, error) {
	q := url.Values{}
	q.Set("level", fmt.Sprint(level))
	if ad > 0 {
		q.Set("ad", fmt.Sprint(ad))
	}
	if ap > 0 {
		q.Set("ap", fmt.Sprint(ap))
	}

	resp, err := c.httpClient.Get(fmt.Sprintf("%s/champions/%s/profile?%s", c.baseURL, url.PathEscape(championID), q.Encode()))
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("profile failed (status %d): %s", resp.StatusCode, bytes.TrimSpace(bodyBytes))
	}

	var profile recommend.ChampionProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &profile, nil
}
