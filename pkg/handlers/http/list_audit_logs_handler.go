package http

import (
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustPost/pkg/handlers/http/response"
	"github.com/NeuralTrust/TrustPost/pkg/infra/auditlogs"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listAuditLogsHandler struct {
	logger       *logrus.Logger
	auditService auditlogs.Service
	now          func() time.Time
}

func NewListAuditLogsHandler(logger *logrus.Logger, auditService auditlogs.Service) Handler {
	return &listAuditLogsHandler{
		logger:       logger,
		auditService: auditService,
		now:          time.Now,
	}
}

// Handle @Summary List audit log entries
// @Description Returns moderation decisions recorded in a date range, oldest first
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (RFC3339), defaults to 24h before to"
// @Param to query string false "Range end (RFC3339), defaults to now"
// @Param action query string false "Filter by action"
// @Param target_id query string false "Filter by target ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.ListAuditLogsResponse
// @Failure 400 {object} map[string]interface{} "Invalid range"
// @Failure 403 {object} map[string]interface{} "Moderator role required"
// @Router /api/v1/audit-logs [get]
func (h *listAuditLogsHandler) Handle(c *fiber.Ctx) error {
	var req request.ListAuditLogsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	filter, err := req.Filter(h.now())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	entries, err := h.auditService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.ListAuditLogsResponse{
		From:    filter.From,
		To:      filter.To,
		Count:   len(entries),
		Entries: entries,
	})
}
