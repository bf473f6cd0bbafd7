package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/prediction-game/live"
	"github.com/Dosada05/prediction-game/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// Браузерный WebSocket не умеет ставить заголовок Authorization, поэтому
// токен сессии приходит в query-параметре.

type WebSocketHandler struct {
	hub           *live.Hub
	sessionSecret []byte
	upgrader      websocket.Upgrader
	logger        *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, sessionSecret string, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:           hub,
		sessionSecret: []byte(sessionSecret),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Serve upgrades the connection and joins the session's room. The caller may
// only listen to the session its token was issued for.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	token := r.URL.Query().Get("token")

	tokenSession, err := middleware.ParseSessionToken(h.sessionSecret, token)
	if err != nil || tokenSession != sessionID {
		http.Error(w, "invalid or missing session token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.String("session_id", sessionID), slog.Any("error", err))
		return
	}

	h.hub.Join(sessionID, conn)
}
