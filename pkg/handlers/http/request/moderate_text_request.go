package request

import (
	"strings"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
)

type ModerateTextRequest struct {
	Text        string `json:"text"` // @required
	ContentType string `json:"content_type"`
}

func (r *ModerateTextRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return moderation.NewValidationError("text", "is required")
	}
	switch moderation.ContentType(r.ContentType) {
	case "":
		r.ContentType = string(moderation.ContentTypePost)
	case moderation.ContentTypePost, moderation.ContentTypeComment, moderation.ContentTypeTitle:
	default:
		return moderation.NewValidationError("content_type", "must be one of post, comment, title")
	}
	return nil
}
