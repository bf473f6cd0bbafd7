package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/prediction-game/middleware"
	"github.com/Dosada05/prediction-game/models"
	"github.com/Dosada05/prediction-game/services"
	"github.com/go-chi/chi/v5"
)

type PredictionHandler struct {
	predictionService services.PredictionService
	sessionSecret     []byte
}

func NewPredictionHandler(predictionService services.PredictionService, sessionSecret string) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		sessionSecret:     []byte(sessionSecret),
	}
}

// CreateSession starts a fresh prediction and issues its session token.
func (h *PredictionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.predictionService.CreateSession(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	token, err := middleware.IssueSessionToken(h.sessionSecret, state.SessionID)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	response := jsonResponse{
		"token": token,
		"state": state,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PredictionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		badRequestResponse(w, r, errors.New("missing session"))
		return
	}

	state, err := h.predictionService.GetState(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeState(w, r, state)
}

// Reorder moves a team inside its group's predicted finishing order.
func (h *PredictionHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		badRequestResponse(w, r, errors.New("missing session"))
		return
	}

	groupID := models.GroupID(chi.URLParam(r, "groupID"))
	if !groupID.Valid() {
		badRequestResponse(w, r, errors.New("invalid group id"))
		return
	}

	var input struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.predictionService.Reorder(r.Context(), sessionID, groupID, input.From, input.To)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeState(w, r, state)
}

func (h *PredictionHandler) ToggleThirdPlace(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		badRequestResponse(w, r, errors.New("missing session"))
		return
	}

	var input struct {
		TeamID string `json:"team_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.TeamID == "" {
		badRequestResponse(w, r, errors.New("team_id is required"))
		return
	}

	state, err := h.predictionService.ToggleThirdPlace(r.Context(), sessionID, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeState(w, r, state)
}

func (h *PredictionHandler) SeedBracket(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		badRequestResponse(w, r, errors.New("missing session"))
		return
	}

	state, err := h.predictionService.SeedBracket(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeState(w, r, state)
}

func (h *PredictionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		badRequestResponse(w, r, errors.New("missing session"))
		return
	}

	var input struct {
		MatchID  string `json:"match_id"`
		WinnerID string `json:"winner_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.MatchID == "" || input.WinnerID == "" {
		badRequestResponse(w, r, errors.New("match_id and winner_id are required"))
		return
	}

	state, err := h.predictionService.Advance(r.Context(), sessionID, input.MatchID, input.WinnerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeState(w, r, state)
}

func (h *PredictionHandler) writeState(w http.ResponseWriter, r *http.Request, state *services.SessionState) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"state": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
