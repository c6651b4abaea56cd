package post

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Status string

const (
	StatusPublished     Status = "published"
	StatusPendingReview Status = "pending_review"
	StatusRejected      Status = "rejected"
)

type Post struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	SubmissionID uuid.UUID      `json:"submission_id" gorm:"type:uuid;uniqueIndex"`
	AuthorID     string         `json:"author_id" gorm:"index"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	MediaKeys    pq.StringArray `json:"media_keys" gorm:"type:text[]"`
	Status       Status         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (Post) TableName() string {
	return "public.posts"
}

type Comment struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SubmissionID uuid.UUID `json:"submission_id" gorm:"type:uuid;uniqueIndex"`
	PostID       uuid.UUID `json:"post_id" gorm:"type:uuid;index"`
	AuthorID     string    `json:"author_id" gorm:"index"`
	Content      string    `json:"content"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "public.comments"
}

// Repository publishes at most once per submission id. Publish reports
// created=false when the submission was already published.
//
//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore --with-expecter
type Repository interface {
	PublishPost(ctx context.Context, p *Post) (created bool, err error)
	PublishComment(ctx context.Context, c *Comment) (created bool, err error)
	// FindPostBySubmission and FindCommentBySubmission return a NotFoundError
	// when nothing was published under the submission id.
	FindPostBySubmission(ctx context.Context, submissionID uuid.UUID) (*Post, error)
	FindCommentBySubmission(ctx context.Context, submissionID uuid.UUID) (*Comment, error)
	// PostExists reports whether a published post with the id exists.
	PostExists(ctx context.Context, id uuid.UUID) (bool, error)
	// ResolvePending moves a pending_review post or comment to the given
	// status. It reports false when the target is no longer pending.
	ResolvePending(ctx context.Context, kind Kind, id uuid.UUID, status Status) (bool, error)
}

type Kind string

const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)
