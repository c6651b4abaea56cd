package moderation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Invocation records one run of the text moderation engine for usage and cost
// accounting.
type Invocation struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AuthorID         string    `json:"author_id" gorm:"index"`
	ContentType      string    `json:"content_type"`
	Source           string    `json:"source"`
	Provider         string    `json:"provider"`
	Model            string    `json:"model"`
	Decision         string    `json:"decision"`
	PromptTokens     int64     `json:"prompt_tokens"`
	CompletionTokens int64     `json:"completion_tokens"`
	CostUSD          float64   `json:"cost_usd"`
	LatencyMs        int64     `json:"latency_ms"`
	Error            string    `json:"error,omitempty"`
	CreatedAt        time.Time `json:"created_at" gorm:"index"`
}

func (Invocation) TableName() string {
	return "public.moderation_invocations"
}

type InvocationRepository interface {
	Save(ctx context.Context, inv *Invocation) error
}
