package http

import (
	"github.com/NeuralTrust/TrustPost/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustPost/pkg/infra/storage"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createUploadURLHandler struct {
	logger       *logrus.Logger
	storage      storage.Storage
	allowedTypes []string
}

// NewCreateUploadURLHandler issues presigned PUT URLs for clients that upload
// directly to the bucket.
func NewCreateUploadURLHandler(
	logger *logrus.Logger,
	storage storage.Storage,
	allowedTypes []string,
) Handler {
	return &createUploadURLHandler{
		logger:       logger,
		storage:      storage,
		allowedTypes: allowedTypes,
	}
}

// Handle @Summary Create a presigned upload URL
// @Description Returns a short lived presigned PUT for one media file
// @Tags Media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param upload body request.CreateUploadURLRequest true "File description"
// @Success 201 {object} storage.PresignedUpload
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /api/v1/media/upload-url [post]
func (h *createUploadURLHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateUploadURLRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.Validate(h.allowedTypes); err != nil {
		return respondError(c, h.logger, err)
	}

	key := h.storage.NewKey(middleware.UserID(c), req.Filename)
	upload, err := h.storage.PresignUpload(c.UserContext(), key, req.ContentType)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(upload)
}
