package http

import (
	"github.com/NeuralTrust/TrustPost/pkg/app/submission"
	"github.com/NeuralTrust/TrustPost/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type createCommentHandler struct {
	logger       *logrus.Logger
	orchestrator submission.Orchestrator
}

func NewCreateCommentHandler(logger *logrus.Logger, orchestrator submission.Orchestrator) Handler {
	return &createCommentHandler{
		logger:       logger,
		orchestrator: orchestrator,
	}
}

// Handle @Summary Submit a comment
// @Description Moderates a comment and publishes it under an existing post
// @Tags Submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param comment body request.CreateCommentRequest true "Comment"
// @Success 201 {object} submission.Outcome "Published"
// @Success 202 {object} submission.Outcome "Published, pending review"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Post not found"
// @Failure 409 {object} map[string]interface{} "Submission already in progress"
// @Failure 422 {object} submission.Outcome "Comment rejected"
// @Failure 429 {object} submission.Outcome "Rate limited"
// @Router /api/v1/posts/{id}/comments [post]
func (h *createCommentHandler) Handle(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post ID"})
	}

	var req request.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := submissionID(c, req.SubmissionID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	outcome, err := h.orchestrator.SubmitComment(c.UserContext(), submission.CommentRequest{
		SubmissionID: id,
		AuthorID:     middleware.UserID(c),
		PostID:       postID,
		Content:      req.Content,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOutcome(c, outcome)
}
