package handlers

import (
	"net/http"

	"github.com/moba-league/league-system/services"
)

// StatsHandler serves the read-only derived-statistics endpoints. Every
// response is recomputed from the stored collections on each request.
type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(s services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: s}
}

// StandingsHandler handles GET /stats/standings
func (h *StatsHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	table, err := h.statsService.GetStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": table}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DetailedStandingsHandler handles GET /stats/standings/detailed
func (h *StatsHandler) DetailedStandingsHandler(w http.ResponseWriter, r *http.Request) {
	table, err := h.statsService.GetDetailedStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": table}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PlayerStatsHandler handles GET /stats/players
func (h *StatsHandler) PlayerStatsHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := h.statsService.GetPlayerStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// TeamStatsHandler handles GET /stats/teams
func (h *StatsHandler) TeamStatsHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := h.statsService.GetTeamStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SeasonStatsHandler handles GET /stats/season
func (h *StatsHandler) SeasonStatsHandler(w http.ResponseWriter, r *http.Request) {
	season, err := h.statsService.GetSeasonStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"season": season}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PlayerHeroStatsHandler handles GET /stats/players/heroes
func (h *StatsHandler) PlayerHeroStatsHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := h.statsService.GetPlayerHeroStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
