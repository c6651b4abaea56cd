package http

import (
	"github.com/NeuralTrust/TrustPost/pkg/app/textmod"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustPost/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustPost/pkg/handlers/http/response"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateTextHandler struct {
	logger *logrus.Logger
	engine textmod.Engine
}

func NewModerateTextHandler(logger *logrus.Logger, engine textmod.Engine) Handler {
	return &moderateTextHandler{
		logger: logger,
		engine: engine,
	}
}

// Handle @Summary Moderate text
// @Description Classifies text without publishing anything
// @Tags Moderation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param text body request.ModerateTextRequest true "Text to moderate"
// @Success 200 {object} response.ModerateTextResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/moderation/text [post]
func (h *moderateTextHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerateTextRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.logger, err)
	}

	result, err := h.engine.Moderate(c.UserContext(), moderation.Request{
		Text:        req.Text,
		ContentType: moderation.ContentType(req.ContentType),
		AuthorID:    middleware.UserID(c),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	out := response.ModerateTextResponse{
		Decision:   string(result.Decision),
		Categories: make([]string, 0, len(result.Categories)),
		Confidence: result.Confidence,
		Reasoning:  result.Reasoning,
		Source:     string(result.Source),
	}
	for _, cat := range result.Categories {
		out.Categories = append(out.Categories, string(cat))
	}
	if len(result.Scores) > 0 {
		out.Scores = make(map[string]float64, len(result.Scores))
		for cat, score := range result.Scores {
			out.Scores[string(cat)] = score
		}
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
