package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const defaultAllowHeaders = "Authorization, Content-Type, " + RequestIDHeader

type corsGlobalMiddleware struct {
	anyOrigin        bool
	origins          map[string]struct{}
	allowMethods     string
	allowCredentials bool
	exposeHeaders    string
	maxAge           string
}

func NewCORSGlobalMiddleware(
	allowOrigins []string,
	allowMethods []string,
	allowCredentials bool,
	exposeHeaders []string,
	maxAge string,
) Middleware {
	m := &corsGlobalMiddleware{
		origins:          make(map[string]struct{}, len(allowOrigins)),
		allowMethods:     strings.Join(allowMethods, ", "),
		allowCredentials: allowCredentials,
		exposeHeaders:    strings.Join(exposeHeaders, ", "),
		maxAge:           maxAge,
	}
	for _, o := range allowOrigins {
		if o == "*" {
			m.anyOrigin = true
			continue
		}
		m.origins[strings.ToLower(o)] = struct{}{}
	}
	return m
}

func (m *corsGlobalMiddleware) allowed(origin string) bool {
	if m.anyOrigin {
		return true
	}
	_, ok := m.origins[strings.ToLower(origin)]
	return ok
}

func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			return c.Next()
		}
		preflight := c.Method() == fiber.MethodOptions && c.Get(fiber.HeaderAccessControlRequestMethod) != ""

		if !m.allowed(origin) {
			if preflight {
				return c.SendStatus(fiber.StatusForbidden)
			}
			return c.Next()
		}

		c.Vary(fiber.HeaderOrigin)
		// Credentialed responses must echo the origin, never "*".
		if m.anyOrigin && !m.allowCredentials {
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		} else {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		}
		if m.allowCredentials {
			c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		}
		if m.exposeHeaders != "" {
			c.Set(fiber.HeaderAccessControlExposeHeaders, m.exposeHeaders)
		}

		if !preflight {
			return c.Next()
		}
		c.Set(fiber.HeaderAccessControlAllowMethods, m.allowMethods)
		if reqHeaders := c.Get(fiber.HeaderAccessControlRequestHeaders); reqHeaders != "" {
			c.Set(fiber.HeaderAccessControlAllowHeaders, reqHeaders)
		} else {
			c.Set(fiber.HeaderAccessControlAllowHeaders, defaultAllowHeaders)
		}
		if m.maxAge != "" {
			c.Set(fiber.HeaderAccessControlMaxAge, m.maxAge)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
