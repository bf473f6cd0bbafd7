package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/prediction-game/middleware"
	"github.com/Dosada05/prediction-game/services"
	"github.com/go-chi/chi/v5"
)

type SubmissionHandler struct {
	submissionService services.SubmissionService
}

func NewSubmissionHandler(submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Submit packages the session's completed prediction together with the
// submitter's identity and returns the confirmation id.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		badRequestResponse(w, r, errors.New("missing session"))
		return
	}

	var input services.IdentityInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	record, err := h.submissionService.Finalize(r.Context(), sessionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"submission": record}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SubmissionHandler) GetByConfirmationID(w http.ResponseWriter, r *http.Request) {
	confirmationID := chi.URLParam(r, "confirmationID")
	if confirmationID == "" {
		badRequestResponse(w, r, errors.New("missing confirmation id"))
		return
	}

	record, err := h.submissionService.GetByConfirmationID(r.Context(), confirmationID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"submission": record}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
