package handlers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/dom/league-item-advisor/internal/api/middleware"
	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/recommend"
	"github.com/dom/league-item-advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationHandler_Recommend(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		seed           bool
		body           any
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name:           "bot lane carry",
			seed:           true,
			body:           testutil.BotLaneGameState(),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

				var rec recommend.Recommendation
				testutil.AssertJSONResponse(t, resp, &rec)
				assert.Equal(t, "Jinx", rec.ChampionName)
				assert.Equal(t, 9, rec.ChampionLevel)
				assert.Equal(t, 1450.0, rec.CurrentGold)
				assert.Equal(t, recommend.ADFocused, rec.ChampionProfile)
				assert.Equal(t, []string{"Darius", "Lux"}, rec.EnemyAnalysis.EnemyChampions)

				require.NotEmpty(t, rec.Recommendations)
				testutil.AssertRanked(t, rec.Recommendations)
				testutil.AssertNotRecommended(t, rec.Recommendations, "3072")
				for _, item := range rec.Recommendations {
					assert.Len(t, item.CriteriaScores, recommend.NumCriteria)
					assert.NotEmpty(t, item.Explanation)
				}
			},
		},
		{
			name:           "no catalog data",
			body:           testutil.BotLaneGameState(),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var rec recommend.Recommendation
				testutil.AssertJSONResponse(t, resp, &rec)
				assert.NotNil(t, rec.Recommendations)
				assert.Empty(t, rec.Recommendations)
				assert.Equal(t, []string{"Darius", "Lux"}, rec.EnemyAnalysis.EnemyChampions)
			},
		},
		{
			name:           "missing active player",
			body:           &domain.GameState{AllPlayers: []domain.Player{}},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "activePlayer is required")
			},
		},
		{
			name: "missing summoner name",
			body: testutil.NewGameStateBuilder("").
				WithPlayer("Someone", "Jinx", domain.TeamOrder, 3).
				Build(),
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "activePlayer.summonerName is required")
			},
		},
		{
			name:           "negative gold",
			body:           testutil.NewGameStateBuilder("Faker").WithGold(-5).Build(),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)
			if tt.seed {
				testutil.SeedBotLane(t, ts.DB.DB)
			}

			req := testutil.NewJSONRequest(t, http.MethodPost, ts.APIURL("/recommendations/items"), tt.body)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestRecommendationHandler_MalformedBody(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Post(ts.APIURL("/recommendations/items"), "application/json", bytes.NewBufferString(`{"activePlayer":`))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid request body")
}

func TestRecommendationHandler_Health(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/recommendations/health"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var health struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertJSONResponse(t, resp, &health)
	assert.Equal(t, "UP", health.Status)

	metricsResp, err := http.Get(ts.BaseURL() + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	testutil.AssertStatusCode(t, metricsResp, http.StatusOK)
}
