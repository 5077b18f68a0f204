package realtimeHandler

import (
	"mordomia/internal/entity"
	"mordomia/internal/middleware"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/handlerUtil"
	jwtPkg "mordomia/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Authenticate runs before the upgrade. Browsers cannot attach headers to a
// websocket handshake, so the access token travels as ?token=.
func (h *RealtimeHandler) Authenticate(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	token, err := jwtPkg.VerifyToken(ctx.Query("token"), middleware.AccessTokenSecret)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	user, err := jwtPkg.ClaimsToLoginData(token)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if h.revocations != nil {
		c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 2*time.Second)
		defer cancel()

		revoked, err := h.revocations.IsTokenRevoked(c, user.TokenID)
		if err != nil || revoked {
			return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
		}
	}

	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

// Stream pushes the user's record change events until the client goes away.
// Incoming messages are read only to notice the close.
func (h *RealtimeHandler) Stream(conn *websocket.Conn) {
	user, ok := conn.Locals("user").(entity.UserLoginData)
	if !ok {
		_ = conn.Close()
		return
	}

	log := h.log.WithField("user_id", user.ID)

	sub := h.hub.Subscribe(user.ID)
	defer sub.Close()

	log.Info("Realtime client connected")
	defer log.Info("Realtime client disconnected")

	_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				log.WithFields(logrus.Fields{
					"entity": event.Entity,
					"error":  err.Error(),
				}).Warn("Failed to push realtime event")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
