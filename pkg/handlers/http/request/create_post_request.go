package request

import (
	"strings"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
)

const MaxTitleLength = 300

// CreatePostRequest holds the text fields of the multipart post form. Files
// arrive under MediaField.
type CreatePostRequest struct {
	SubmissionID string `form:"submission_id"`
	Title        string `form:"title"`   // @required
	Content      string `form:"content"` // @required
}

const MediaField = "media[]"

func (r *CreatePostRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return moderation.NewValidationError("title", "is required")
	}
	if len([]rune(r.Title)) > MaxTitleLength {
		return moderation.NewValidationError("title", "must be at most %d characters", MaxTitleLength)
	}
	if strings.TrimSpace(r.Content) == "" {
		return moderation.NewValidationError("content", "is required")
	}
	return nil
}
