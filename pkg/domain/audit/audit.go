package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Action string

const (
	ActionApproved         Action = "approved"
	ActionRejected         Action = "rejected"
	ActionNeedsReview      Action = "needs_review"
	ActionRateLimited      Action = "rate_limited"
	ActionMediaFlagged     Action = "media_flagged"
	ActionValidationFailed Action = "validation_failed"
	ActionReviewResolved   Action = "review_resolved"
)

type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
	TargetMedia   TargetType = "media"
	TargetText    TargetType = "text"
)

// Entry is an immutable moderation decision record.
type Entry struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Action       Action         `json:"action" gorm:"index"`
	TargetType   TargetType     `json:"target_type"`
	TargetID     string         `json:"target_id" gorm:"index"`
	ActorID      string         `json:"actor_id" gorm:"index"`
	Reason       string         `json:"reason"`
	Categories   pq.StringArray `json:"categories" gorm:"type:text[]"`
	Confidence   float64        `json:"confidence"`
	Source       string         `json:"source"`
	Resolved     bool           `json:"resolved"`
	ResolvesID   *uuid.UUID     `json:"resolves_id,omitempty" gorm:"type:uuid"`
	Model        string         `json:"model,omitempty"`
	TotalTokens  int64          `json:"total_tokens"`
	CostUSD      float64        `json:"cost_usd"`
	ClientIP     string         `json:"client_ip,omitempty"`
	UserAgent    string         `json:"user_agent,omitempty"`
	DeviceFamily string         `json:"device_family,omitempty"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
}

func (Entry) TableName() string {
	return "public.audit_logs"
}

type Filter struct {
	From       time.Time
	To         time.Time
	Action     Action
	TargetID   string
	ResolvesID *uuid.UUID
	Limit      int
	Offset     int
}

// ErrDuplicateResolution is returned by Append when the entry it resolves
// already has a resolution.
var ErrDuplicateResolution = errors.New("audit entry already has a resolution")

// Repository is append-only: entries are never updated or deleted.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, id uuid.UUID) (*Entry, error)
	ListByDateRange(ctx context.Context, filter Filter) ([]Entry, error)
}
