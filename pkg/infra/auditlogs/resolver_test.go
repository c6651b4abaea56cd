package auditlogs

import (
	"context"
	"testing"

	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	"github.com/NeuralTrust/TrustPost/pkg/domain/post"
	postMocks "github.com/NeuralTrust/TrustPost/pkg/domain/post/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostResolver_ApplyResolution(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		targetType audit.TargetType
		decision   audit.Action
		wantKind   post.Kind
		wantStatus post.Status
	}{
		{"approved post", audit.TargetPost, audit.ActionApproved, post.KindPost, post.StatusPublished},
		{"rejected post", audit.TargetPost, audit.ActionRejected, post.KindPost, post.StatusRejected},
		{"approved comment", audit.TargetComment, audit.ActionApproved, post.KindComment, post.StatusPublished},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := postMocks.NewRepository(t)
			posts.EXPECT().ResolvePending(mock.Anything, tt.wantKind, id, tt.wantStatus).Return(true, nil).Once()

			err := NewPostResolver(posts, testLogger()).ApplyResolution(context.Background(), &audit.Entry{
				TargetType: tt.targetType,
				TargetID:   id.String(),
				Source:     string(tt.decision),
			})
			require.NoError(t, err)
		})
	}
}

func TestPostResolver_AlreadySettledIsNotAnError(t *testing.T) {
	posts := postMocks.NewRepository(t)
	id := uuid.New()
	posts.EXPECT().ResolvePending(mock.Anything, post.KindPost, id, post.StatusRejected).Return(false, nil).Once()

	err := NewPostResolver(posts, testLogger()).ApplyResolution(context.Background(), &audit.Entry{
		TargetType: audit.TargetPost,
		TargetID:   id.String(),
		Source:     string(audit.ActionRejected),
	})
	assert.NoError(t, err)
}

func TestPostResolver_IgnoresOtherTargets(t *testing.T) {
	posts := postMocks.NewRepository(t)

	err := NewPostResolver(posts, testLogger()).ApplyResolution(context.Background(), &audit.Entry{
		TargetType: audit.TargetText,
		TargetID:   "free text",
		Source:     string(audit.ActionApproved),
	})
	assert.NoError(t, err)
	posts.AssertNotCalled(t, "ResolvePending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostResolver_InvalidTargetID(t *testing.T) {
	posts := postMocks.NewRepository(t)

	err := NewPostResolver(posts, testLogger()).ApplyResolution(context.Background(), &audit.Entry{
		TargetType: audit.TargetPost,
		TargetID:   "sub-9",
		Source:     string(audit.ActionApproved),
	})
	assert.Error(t, err)
}
