package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/logging"
	"github.com/dom/league-item-advisor/internal/service"
	"github.com/dom/league-item-advisor/internal/validation"
	"github.com/goccy/go-json"
)

// maxGameStateBytes bounds the request body; a full allgamedata snapshot is well under this.
const maxGameStateBytes = 1 << 20

type RecommendationHandler struct {
	recommendationService *service.RecommendationService
}

func NewRecommendationHandler(recommendationService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	log := logging.Ctx(r.Context())

	var state domain.GameState
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGameStateBytes)).Decode(&state); err != nil {
		log.Warn().Err(err).Msg("undecodable game state")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateStruct(&state); err != nil {
		log.Warn().Err(err).Msg("invalid game state")
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.recommendationService.Recommend(r.Context(), &state)
	if err != nil {
		if errors.Is(err, domain.ErrMissingActivePlayer) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("summoner", state.ActivePlayer.SummonerName).Msg("recommendation failed")
		http.Error(w, "Failed to generate recommendations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, rec)
}

func (h *RecommendationHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: "UP", Service: "item-recommendations"})
}
