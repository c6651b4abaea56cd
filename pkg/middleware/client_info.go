package middleware

import (
	"context"

	"github.com/NeuralTrust/TrustPost/pkg/common"
	"github.com/NeuralTrust/TrustPost/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type clientInfoMiddleware struct{}

// NewClientInfoMiddleware stores the caller IP, user agent and a request id
// in the user context so they reach the audit log.
func NewClientInfoMiddleware() Middleware {
	return &clientInfoMiddleware{}
}

func (m *clientInfoMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestID := ctx.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		ctx.Set(RequestIDHeader, requestID)
		ctx.Locals(common.RequestIDContextKey, requestID)

		c := utils.WithClientInfo(ctx.UserContext(), utils.ClientInfo{
			IP:        ctx.IP(),
			UserAgent: ctx.Get(fiber.HeaderUserAgent),
		})
		c = context.WithValue(c, common.RequestIDContextKey, requestID)
		ctx.SetUserContext(c)
		return ctx.Next()
	}
}
