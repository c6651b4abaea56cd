package http

import (
	"github.com/NeuralTrust/TrustPost/pkg/common"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// submissionID takes the client supplied id from the body field or the
// header. Clients pick it up front so they can watch progress and retry
// without publishing twice.
func submissionID(c *fiber.Ctx, fromBody string) (uuid.UUID, error) {
	raw := fromBody
	if raw == "" {
		raw = c.Get(common.SubmissionIDHeader)
	}
	if raw == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, moderation.NewValidationError("submission_id", "must be a UUID")
	}
	return id, nil
}
