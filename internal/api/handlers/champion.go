package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/logging"
	"github.com/dom/league-item-advisor/internal/service"
	"github.com/go-chi/chi/v5"
)

type ChampionHandler struct {
	championService *service.ChampionService
}

func NewChampionHandler(championService *service.ChampionService) *ChampionHandler {
	return &ChampionHandler{championService: championService}
}

type ChampionResponse struct {
	ID    string   `json:"id"`
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`

	HP                 float64 `json:"hp"`
	HPPerLevel         float64 `json:"hpPerLevel"`
	Armor              float64 `json:"armor"`
	ArmorPerLevel      float64 `json:"armorPerLevel"`
	SpellBlock         float64 `json:"spellBlock"`
	SpellBlockPerLevel float64 `json:"spellBlockPerLevel"`
}

type ChampionsResponse struct {
	Champions []ChampionResponse `json:"champions"`
}

func toChampionResponse(c *domain.Champion) ChampionResponse {
	tags := c.TagList()
	if tags == nil {
		tags = []string{}
	}
	return ChampionResponse{
		ID:                 c.ID,
		Key:                c.Key,
		Name:               c.Name,
		Title:              c.Title,
		Tags:               tags,
		HP:                 c.HP,
		HPPerLevel:         c.HPPerLevel,
		Armor:              c.Armor,
		ArmorPerLevel:      c.ArmorPerLevel,
		SpellBlock:         c.SpellBlock,
		SpellBlockPerLevel: c.SpellBlockPerLevel,
	}
}

func (h *ChampionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.GetAllChampions(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to list champions")
		http.Error(w, "Failed to get champions", http.StatusInternalServerError)
		return
	}

	resp := ChampionsResponse{
		Champions: make([]ChampionResponse, len(champions)),
	}
	for i, c := range champions {
		resp.Champions[i] = toChampionResponse(c)
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *ChampionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	champion, err := h.championService.GetChampion(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, r, id, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toChampionResponse(champion))
}

// Profile previews the scaling profile at ?level=, optionally with live ?ad= and ?ap=.
func (h *ChampionHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	level := 1
	if v := q.Get("level"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 30 {
			http.Error(w, "level must be an integer between 1 and 30", http.StatusBadRequest)
			return
		}
		level = n
	}

	var stats domain.ChampionStats
	for param, dst := range map[string]*float64{"ad": &stats.AttackDamage, "ap": &stats.AbilityPower} {
		v := q.Get(param)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			http.Error(w, param+" must be a non-negative number", http.StatusBadRequest)
			return
		}
		*dst = f
	}

	profile, err := h.championService.ProfileChampion(r.Context(), id, level, stats)
	if err != nil {
		h.writeLookupError(w, r, id, err)
		return
	}

	writeJSON(w, r, http.StatusOK, profile)
}

func (h *ChampionHandler) writeLookupError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, domain.ErrChampionNotFound) {
		http.Error(w, "Champion not found", http.StatusNotFound)
		return
	}
	logging.Ctx(r.Context()).Error().Err(err).Str("champion_id", id).Msg("champion lookup failed")
	http.Error(w, "Failed to get champion", http.StatusInternalServerError)
}
