package request

import (
	"strings"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
)

type CreateCommentRequest struct {
	SubmissionID string `json:"submission_id"`
	Content      string `json:"content"` // @required
}

func (r *CreateCommentRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return moderation.NewValidationError("content", "is required")
	}
	return nil
}
