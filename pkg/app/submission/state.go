package submission

import (
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/domain/media"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/google/uuid"
)

type State string

const (
	StateIdle                State = "idle"
	StateValidatingMedia     State = "validating_media"
	StateCompressingMedia    State = "compressing_media"
	StateSafetyScanningMedia State = "safety_scanning_media"
	StateUploadingMedia      State = "uploading_media"
	StateModeratingText      State = "moderating_text"
	StatePublishing          State = "publishing"
	StateDone                State = "done"
	StateRejected            State = "rejected"
	StateRateLimited         State = "rate_limited"
	StateFailed              State = "failed"
)

func (s State) Terminal() bool {
	switch s {
	case StateDone, StateRejected, StateRateLimited, StateFailed:
		return true
	}
	return false
}

type Reason string

const (
	ReasonRateLimited      Reason = "rate_limited"
	ReasonPendingReview    Reason = "pending_review"
	ReasonContentRejected  Reason = "content_rejected"
	ReasonCommentRejected  Reason = "comment_rejected"
	ReasonValidationFailed Reason = "validation_failed"
)

type Kind string

const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// PostRequest is one post submission attempt. Media candidates are owned by
// the attempt and released when it ends.
type PostRequest struct {
	SubmissionID uuid.UUID
	AuthorID     string
	Title        string
	Content      string
	Media        []*media.Candidate
}

type CommentRequest struct {
	SubmissionID uuid.UUID
	AuthorID     string
	PostID       uuid.UUID
	Content      string
}

// Outcome is the public result of a submission.
type Outcome struct {
	SubmissionID uuid.UUID             `json:"submission_id"`
	Success      bool                  `json:"success"`
	Reason       Reason                `json:"reason,omitempty"`
	Message      string                `json:"message,omitempty"`
	State        State                 `json:"state"`
	ID           *uuid.UUID            `json:"id,omitempty"`
	Categories   []moderation.Category `json:"categories,omitempty"`
	MediaKeys    []string              `json:"media_keys,omitempty"`
	RetryAfter   time.Duration         `json:"-"`
}

// Event is one state transition published to progress observers.
type Event struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	UserID       string    `json:"-"`
	State        State     `json:"state"`
	Reason       Reason    `json:"reason,omitempty"`
	Message      string    `json:"message,omitempty"`
	At           time.Time `json:"at"`
}
