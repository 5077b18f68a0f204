package realtimeHandler

import (
	"mordomia/internal/middleware"
	"mordomia/pkg/realtime"
	"mordomia/pkg/redis"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

const (
	pingInterval = 30 * time.Second
	writeTimeout = 5 * time.Second
	pongTimeout  = pingInterval + 10*time.Second
)

type Subscriber interface {
	Subscribe(userID string) *realtime.Subscription
}

type RealtimeHandler struct {
	log         *logrus.Logger
	middleware  middleware.Middleware
	hub         Subscriber
	revocations redis.IRedis
}

// New wires the event stream. revocations may be nil, in which case logged
// out tokens keep working until they expire.
func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	hub Subscriber,
	revocations redis.IRedis,
) *RealtimeHandler {
	return &RealtimeHandler{
		log:         log,
		middleware:  middleware,
		hub:         hub,
		revocations: revocations,
	}
}

func (h *RealtimeHandler) Start(srv fiber.Router) {
	srv.Get("/ws", h.Authenticate, websocket.New(h.Stream, websocket.Config{
		HandshakeTimeout: 10 * time.Second,
	}))
}
