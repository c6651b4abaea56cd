package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/NeuralTrust/TrustPost/pkg/common"
	"github.com/NeuralTrust/TrustPost/pkg/infra/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	tokenQueryParam     = "token"
	claimsLocalKey      = "jwt_claims"
)

type authMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

// NewAuthMiddleware resolves the bearer token to the author id. Websocket
// upgrades may pass the token as a query parameter instead.
func NewAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
) Middleware {
	return &authMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenString, err := bearerToken(ctx)
		if err != nil {
			m.logger.WithError(err).Debug("missing or malformed authorization")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		claims, err := m.jwtManager.DecodeToken(tokenString)
		if err != nil {
			m.logger.WithError(err).Debug("invalid token")
			message := "Invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				message = "Token expired"
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
		}

		ctx.Locals(common.UserIDContextKey, claims.Subject)
		ctx.Locals(claimsLocalKey, claims)
		c := context.WithValue(ctx.UserContext(), common.UserIDContextKey, claims.Subject)
		ctx.SetUserContext(c)

		return ctx.Next()
	}
}

func bearerToken(ctx *fiber.Ctx) (string, error) {
	authHeader := ctx.Get(authorizationHeader)
	if authHeader == "" {
		if token := ctx.Query(tokenQueryParam); token != "" && strings.HasPrefix(ctx.Path(), "/ws/") {
			return token, nil
		}
		return "", errors.New("Authorization required")
	}
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", errors.New("Invalid authorization format")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return "", errors.New("Empty token provided")
	}
	return token, nil
}

// UserID returns the authenticated author id set by the auth middleware.
func UserID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(common.UserIDContextKey).(string)
	return id
}

func Claims(ctx *fiber.Ctx) *jwt.Claims {
	claims, _ := ctx.Locals(claimsLocalKey).(*jwt.Claims)
	return claims
}

type moderatorMiddleware struct {
	logger *logrus.Logger
}

// NewModeratorMiddleware must run after the auth middleware.
func NewModeratorMiddleware(logger *logrus.Logger) Middleware {
	return &moderatorMiddleware{logger: logger}
}

func (m *moderatorMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims := Claims(ctx)
		if claims == nil || !claims.IsModerator() {
			m.logger.WithField("user_id", UserID(ctx)).Debug("moderator role required")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Moderator role required"})
		}
		return ctx.Next()
	}
}
