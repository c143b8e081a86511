package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moba-league/league-system/models"
	"github.com/moba-league/league-system/services"
)

type ResultHandler struct {
	resultService services.ResultService
}

func NewResultHandler(rs services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: rs}
}

// ListHandler handles GET /results
func (h *ResultHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.ListResults(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"results": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SaveHandler handles POST /results. Saving the same fixture twice replaces
// the earlier entry; the match id is derived, never client-supplied.
func (h *ResultHandler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	var input services.SaveResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.resultService.SaveResult(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SaveRecordsHandler handles PUT /results/{matchID}/records
func (h *ResultHandler) SaveRecordsHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	var input struct {
		Records []models.GameRecord `json:"records"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.resultService.SaveGameRecords(r.Context(), matchID, input.Records); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"match_id": matchID, "saved": len(input.Records)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteHandler handles DELETE /results/{matchID}
func (h *ResultHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if err := h.resultService.DeleteResult(r.Context(), matchID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
