package request

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
)

type CreateUploadURLRequest struct {
	Filename    string `json:"filename"`     // @required
	ContentType string `json:"content_type"` // @required
}

func (r *CreateUploadURLRequest) Validate(allowed []string) error {
	r.Filename = filepath.Base(strings.TrimSpace(r.Filename))
	if r.Filename == "" || r.Filename == "." || r.Filename == string(filepath.Separator) {
		return moderation.NewValidationError("filename", "is required")
	}
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return moderation.NewValidationError("content_type", "is not a valid media type")
	}
	for _, a := range allowed {
		if strings.EqualFold(a, mediaType) {
			r.ContentType = mediaType
			return nil
		}
	}
	return moderation.NewValidationError("content_type", "%s is not allowed", mediaType)
}
