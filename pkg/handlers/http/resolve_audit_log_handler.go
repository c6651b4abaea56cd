package http

import (
	"errors"

	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	"github.com/NeuralTrust/TrustPost/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustPost/pkg/infra/auditlogs"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type resolveAuditLogHandler struct {
	logger       *logrus.Logger
	auditService auditlogs.Service
}

func NewResolveAuditLogHandler(logger *logrus.Logger, auditService auditlogs.Service) Handler {
	return &resolveAuditLogHandler{
		logger:       logger,
		auditService: auditService,
	}
}

// Handle @Summary Resolve a pending review
// @Description Appends a review_resolved entry for a needs_review decision
// @Tags Audit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Audit entry ID"
// @Param resolution body request.ResolveAuditLogRequest true "Resolution"
// @Success 201 {object} audit.Entry
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 409 {object} map[string]interface{} "Already resolved or not reviewable"
// @Router /api/v1/audit-logs/{id}/resolve [post]
func (h *resolveAuditLogHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid audit entry ID"})
	}

	var req request.ResolveAuditLogRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.logger, err)
	}

	entry, err := h.auditService.Resolve(c.UserContext(), id, auditlogs.Resolution{
		ReviewerID: middleware.UserID(c),
		Decision:   audit.Action(req.Decision),
		Reason:     req.Reason,
	})
	if err != nil {
		if errors.Is(err, auditlogs.ErrAlreadyResolved) || errors.Is(err, auditlogs.ErrNotReviewable) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
