package auditlogs

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	"github.com/NeuralTrust/TrustPost/pkg/domain/post"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type postResolver struct {
	posts  post.Repository
	logger *logrus.Logger
}

// NewPostResolver moves posts and comments held for review to published or
// rejected according to the moderator's decision.
func NewPostResolver(posts post.Repository, logger *logrus.Logger) ContentResolver {
	return &postResolver{posts: posts, logger: logger}
}

func (r *postResolver) ApplyResolution(ctx context.Context, entry *audit.Entry) error {
	var kind post.Kind
	switch entry.TargetType {
	case audit.TargetPost:
		kind = post.KindPost
	case audit.TargetComment:
		kind = post.KindComment
	default:
		return nil
	}

	var status post.Status
	switch audit.Action(entry.Source) {
	case audit.ActionApproved:
		status = post.StatusPublished
	case audit.ActionRejected:
		status = post.StatusRejected
	default:
		return fmt.Errorf("unknown resolution decision %q", entry.Source)
	}

	id, err := uuid.Parse(entry.TargetID)
	if err != nil {
		return fmt.Errorf("invalid %s id %q: %w", kind, entry.TargetID, err)
	}
	changed, err := r.posts.ResolvePending(ctx, kind, id, status)
	if err != nil {
		return err
	}
	if !changed {
		r.logger.WithFields(logrus.Fields{
			"target_type": string(kind),
			"target_id":   entry.TargetID,
		}).Debug("content was not pending review, status left unchanged")
	}
	return nil
}
