package testutil

import (
	"io"
	"net/http"
	"testing"

	"github.com/dom/league-item-advisor/internal/recommend"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v
func AssertJSONResponse(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	assert.Contains(t, string(body), expectedMessage, "error message mismatch")
}

// AssertRanked verifies ranks run 1..n and final scores never increase
func AssertRanked(t *testing.T, items []recommend.RecommendedItem) {
	t.Helper()
	for i, item := range items {
		assert.Equal(t, i+1, item.Rank, "unexpected rank for %s", item.ItemID)
		assert.GreaterOrEqual(t, item.FinalScore, 0.0)
		assert.LessOrEqual(t, item.FinalScore, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, items[i-1].FinalScore, item.FinalScore, "scores out of order at rank %d", i+1)
		}
	}
}

// AssertNotRecommended verifies an item ID is absent from the ranking
func AssertNotRecommended(t *testing.T, items []recommend.RecommendedItem, itemID string) {
	t.Helper()
	for _, item := range items {
		assert.NotEqual(t, itemID, item.ItemID, "item %s should not be recommended", itemID)
	}
}
