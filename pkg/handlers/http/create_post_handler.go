package http

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/NeuralTrust/TrustPost/pkg/app/submission"
	"github.com/NeuralTrust/TrustPost/pkg/domain/media"
	"github.com/NeuralTrust/TrustPost/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type createPostHandler struct {
	logger       *logrus.Logger
	orchestrator submission.Orchestrator
	workDir      string
}

func NewCreatePostHandler(
	logger *logrus.Logger,
	orchestrator submission.Orchestrator,
	workDir string,
) Handler {
	return &createPostHandler{
		logger:       logger,
		orchestrator: orchestrator,
		workDir:      workDir,
	}
}

// Handle @Summary Submit a post
// @Description Runs media validation, compression, safety scan, upload and text moderation, then publishes the post
// @Tags Submissions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Post title"
// @Param content formData string true "Post body"
// @Param submission_id formData string false "Client generated submission id"
// @Param media[] formData file false "Attached images or videos"
// @Success 201 {object} submission.Outcome "Published"
// @Success 202 {object} submission.Outcome "Published, pending review"
// @Failure 400 {object} map[string]interface{} "Invalid request or media"
// @Failure 409 {object} map[string]interface{} "Submission already in progress"
// @Failure 422 {object} submission.Outcome "Content rejected"
// @Failure 429 {object} submission.Outcome "Rate limited"
// @Failure 503 {object} map[string]interface{} "Temporary failure"
// @Router /api/v1/posts [post]
func (h *createPostHandler) Handle(c *fiber.Ctx) error {
	var req request.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid multipart form"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := submissionID(c, req.SubmissionID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		files = append(form.File[request.MediaField], form.File["media"]...)
	}
	candidates, err := h.saveCandidates(c, files)
	if err != nil {
		media.ReleaseAll(candidates)
		return respondError(c, h.logger, err)
	}

	outcome, err := h.orchestrator.SubmitPost(c.UserContext(), submission.PostRequest{
		SubmissionID: id,
		AuthorID:     middleware.UserID(c),
		Title:        req.Title,
		Content:      req.Content,
		Media:        candidates,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOutcome(c, outcome)
}

func (h *createPostHandler) saveCandidates(c *fiber.Ctx, files []*multipart.FileHeader) ([]*media.Candidate, error) {
	candidates := make([]*media.Candidate, 0, len(files))
	for _, fh := range files {
		path := filepath.Join(h.workDir, uuid.New().String()+filepath.Ext(fh.Filename))
		if err := c.SaveFile(fh, path); err != nil {
			return candidates, fmt.Errorf("failed to store upload %s: %w", fh.Filename, err)
		}
		candidates = append(candidates, media.NewCandidate(
			filepath.Base(fh.Filename),
			path,
			fh.Header.Get(fiber.HeaderContentType),
			fh.Size,
		))
	}
	return candidates, nil
}
