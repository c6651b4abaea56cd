package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Submissions
	CreatePostHandler    Handler
	CreateCommentHandler Handler

	// Moderation
	ModerateTextHandler    Handler
	CreateUploadURLHandler Handler

	// Audit
	ListAuditLogsHandler   Handler
	ResolveAuditLogHandler Handler

	// System
	GetVersionHandler Handler
	HealthHandler     Handler
}
