package http

import (
	"errors"
	"math"
	"strconv"

	"github.com/NeuralTrust/TrustPost/pkg/app/submission"
	"github.com/NeuralTrust/TrustPost/pkg/common"
	domain "github.com/NeuralTrust/TrustPost/pkg/domain/errors"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps an error returned by the application layer onto a status
// code. Anything unrecognized is an infrastructure failure and is retryable.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	var validationErr *moderation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	case errors.Is(err, moderation.ErrSubmissionInProgress), errors.Is(err, moderation.ErrSubmissionIDConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithError(err).WithField("path", c.Path()).Error("request failed")
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Service temporarily unavailable, please retry"})
}

// respondOutcome writes a submission outcome with the status its reason maps to.
func respondOutcome(c *fiber.Ctx, outcome *submission.Outcome) error {
	status := fiber.StatusCreated
	switch outcome.Reason {
	case submission.ReasonPendingReview:
		status = fiber.StatusAccepted
	case submission.ReasonRateLimited:
		status = fiber.StatusTooManyRequests
		if outcome.RetryAfter > 0 {
			c.Set(common.RetryAfterHeader, strconv.Itoa(int(math.Ceil(outcome.RetryAfter.Seconds()))))
		}
	case submission.ReasonContentRejected, submission.ReasonCommentRejected:
		status = fiber.StatusUnprocessableEntity
	case submission.ReasonValidationFailed:
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(outcome)
}
