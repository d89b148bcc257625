package controllers

import (
	"net/http"

	jwtutil "stockguard/app/jwt"
	"stockguard/app/middleware"
	"stockguard/app/socket"
	"stockguard/global"

	"github.com/gorilla/websocket"
)

type SocketController struct {
	Hub      *socket.Hub
	Signer   *jwtutil.Signer
	Sessions middleware.SessionChecker
	upgrader websocket.Upgrader
}

func NewSocketController(hub *socket.Hub, signer *jwtutil.Signer, sessions middleware.SessionChecker) *SocketController {
	return &SocketController{
		Hub:      hub,
		Signer:   signer,
		Sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin policy is enforced by the CORS layer for the REST
			// surface; the socket accepts any origin and relies on the
			// token check below.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Events upgrades an authenticated dashboard connection. Browsers cannot
// set headers on websocket dials, so the token travels as a query
// parameter and gets the same validation as RequireAuth.
func (c *SocketController) Events(w http.ResponseWriter, r *http.Request) {
	claims, err := c.Signer.Parse(r.URL.Query().Get("token"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
		return
	}
	if c.Sessions != nil && c.Sessions.IsRevoked(r.Context(), claims.ID) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
		return
	}
	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		global.Logger.Warn().Err(err).Msg("socket upgrade failed")
		return
	}
	socket.NewClient(c.Hub, conn).Start()
}
