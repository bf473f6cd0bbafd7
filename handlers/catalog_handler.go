package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/prediction-game/services"
	"github.com/go-chi/chi/v5"
)

const maxFlagUploadSize = 2 << 20 // 2MB

type CatalogHandler struct {
	catalogService services.CatalogService
	adminAPIKey    string
}

func NewCatalogHandler(catalogService services.CatalogService, adminAPIKey string) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, adminAPIKey: adminAPIKey}
}

func (h *CatalogHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.catalogService.ListTeams(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CatalogHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups := h.catalogService.ListGroups(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadFlag replaces a team's flag image. Guarded by the admin API key
// since the rest of the API is open to anonymous sessions.
func (h *CatalogHandler) UploadFlag(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		errorResponse(w, r, http.StatusUnauthorized, "invalid or missing api key")
		return
	}

	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		badRequestResponse(w, r, errors.New("missing team id"))
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		badRequestResponse(w, r, errors.New("flag must be an image"))
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxFlagUploadSize)
	defer body.Close()

	team, err := h.catalogService.UploadFlag(r.Context(), teamID, contentType, body)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CatalogHandler) authorized(r *http.Request) bool {
	if h.adminAPIKey == "" {
		return false
	}
	key := r.Header.Get("X-API-Key")
	return subtle.ConstantTimeCompare([]byte(key), []byte(h.adminAPIKey)) == 1
}
