package middleware

import (
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	infra "github.com/NeuralTrust/TrustPost/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const SemaphoreLocalKey = "ws_semaphore"

type websocketMiddleware struct {
	logger    *logrus.Logger
	semaphore *infra.Semaphore
}

// NewWebsocketMiddleware only lets websocket upgrades through and caps the
// number of open progress streams.
func NewWebsocketMiddleware(logger *logrus.Logger, semaphore *infra.Semaphore) Middleware {
	return &websocketMiddleware{
		logger:    logger,
		semaphore: semaphore,
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if !m.semaphore.Acquire() {
			m.logger.Warn("maximum websocket connections reached, rejecting connection")
			return fiber.ErrTooManyRequests
		}
		prometheus.WebsocketConnections.Set(float64(m.semaphore.Current()))
		c.Locals(SemaphoreLocalKey, m.semaphore)
		return c.Next()
	}
}
