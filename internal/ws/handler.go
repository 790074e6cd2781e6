package ws

import (
	"log"
	"net/http"
	"strings"

	"job-assist/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub           *Hub
	jwt           jwt.Service
	sessionCookie string
	logger        *log.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, sessionCookie string, logger *log.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, sessionCookie: sessionCookie, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleEvents upgrades an authenticated caller and streams their events. The
// token travels as a `token` query parameter or the session cookie, since
// browsers cannot set headers on WebSocket dials.
func (h *Handler) HandleEvents(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		token = strings.TrimSpace(c.Cookies(h.sessionCookie))
	}
	if token == "" {
		return fiber.ErrUnauthorized
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil || h.jwt.IsRefreshToken(claims) {
		return fiber.ErrUnauthorized
	}
	userID := claims.UserID

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
