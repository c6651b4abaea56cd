package router

import (
	_ "github.com/NeuralTrust/TrustPost/docs"
	handlers "github.com/NeuralTrust/TrustPost/pkg/handlers/http"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
	enableDocs          bool
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
	enableDocs bool,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		enableDocs:          enableDocs,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	m := r.middlewareTransport
	h := r.handlerTransport

	router.Use(
		m.PanicRecoverMiddleware.Middleware(),
		m.CORSMiddleware.Middleware(),
		m.ClientInfoMiddleware.Middleware(),
		m.MetricsMiddleware.Middleware(),
	)

	if r.enableDocs {
		router.Get("/docs/*", swagger.HandlerDefault)
	}

	router.Get("/version", h.GetVersionHandler.Handle)
	router.Get("/health", h.HealthHandler.Handle)

	v1 := router.Group("/api/v1", m.AuthMiddleware.Middleware())
	{
		posts := v1.Group("/posts")
		{
			posts.Post("", h.CreatePostHandler.Handle)
			posts.Post("/:id/comments", h.CreateCommentHandler.Handle)
		}

		v1.Post("/moderation/text", h.ModerateTextHandler.Handle)
		v1.Post("/media/upload-url", h.CreateUploadURLHandler.Handle)

		auditLogs := v1.Group("/audit-logs", m.ModeratorMiddleware.Middleware())
		{
			auditLogs.Get("", h.ListAuditLogsHandler.Handle)
			auditLogs.Post("/:id/resolve", h.ResolveAuditLogHandler.Handle)
		}
	}
	return nil
}
