package handlers

import (
	"net/http"

	"github.com/moba-league/league-system/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(ss services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

// GenerateHandler handles POST /schedule/draw
func (h *ScheduleHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Teams []string `json:"teams"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snapshot, err := h.scheduleService.GenerateDraw(r.Context(), input.Teams)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"schedule": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CurrentHandler handles GET /schedule
func (h *ScheduleHandler) CurrentHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.scheduleService.GetCurrent(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// HistoryHandler handles GET /schedule/history
func (h *ScheduleHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.scheduleService.ListHistory(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedules": snapshots}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
